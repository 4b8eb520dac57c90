package linkedlist

import "errors"
import "github.com/hlandau/xlog"

var log, Log = xlog.New("linkedlist")

// Precondition violations. These are programming errors and are raised with
// panic; recover() yields one of these values, matchable with errors.Is.
var (
	ErrEmptyChain = errors.New("linkedlist: empty chain has no middle node")
	ErrConsumed   = errors.New("linkedlist: nodes were already transferred out of this list or chain")
	ErrAliased    = errors.New("linkedlist: cannot merge a list or chain with itself")
)

func violation(err error) {
	log.Errore(err, "precondition violated")
	panic(err)
}
