package linkedlist

// © 2001 Simon Tatham    MIT License
// © 2010 Dave Gamble     MIT License

// Bottom-up merge sort of the chain at head. Runs of width 1, 2, 4, ... are
// merged pairwise until a single pass performs at most one merge. Stable, and
// uses no recursion. Returns the new head and tail.
func sortRuns[T any](head *Node[T], less func(a, b T) bool) (*Node[T], *Node[T]) {
	if head == nil || head.next == nil {
		return head, head
	}

	var p, q, e, tail *Node[T]
	var psize, qsize int
	width := 1

	for {
		// p walks the list of the previous generation; head and tail collect
		// the next one.
		p = head
		head, tail = nil, nil
		numMerges := 0

		for p != nil {
			numMerges++

			// Step q so that [p,q) and [q,q+qsize) are adjacent, non-overlapping
			// runs of at most width nodes each.
			q = p
			psize = 0
			for q != nil && psize < width {
				psize++
				q = q.next
			}
			qsize = width

			for psize > 0 || (qsize > 0 && q != nil) {
				switch {
				case psize == 0:
					e, q = q, q.next
					qsize--
				case qsize == 0 || q == nil:
					e, p = p, p.next
					psize--
				case less(q.Value, p.Value):
					e, q = q, q.next
					qsize--
				default:
					// equal elements come from the p side
					e, p = p, p.next
					psize--
				}

				if tail != nil {
					tail.next = e
				} else {
					head = e
				}
				tail = e
			}

			// p has reached where q started; q is at the next pair of runs.
			p = q
		}

		tail.next = nil
		if numMerges <= 1 {
			return head, tail
		}
		width *= 2
	}
}
