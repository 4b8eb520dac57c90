package linkedlist

import "gopkg.in/hlandau/easymetric.v1/cexp"

var (
	cNodesAppended    = cexp.NewCounter("linkedlist.nodesAppended")
	cReversals        = cexp.NewCounter("linkedlist.reversals")
	cSorts            = cexp.NewCounter("linkedlist.sorts")
	cMerges           = cexp.NewCounter("linkedlist.merges")
	cNodesTransferred = cexp.NewCounter("linkedlist.nodesTransferred")
)
