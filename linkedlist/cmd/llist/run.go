package main

import "github.com/NataliiaYakorieva/goit-algo-fp/config"
import "github.com/NataliiaYakorieva/goit-algo-fp/linkedlist"
import "golang.org/x/exp/constraints"
import "golang.org/x/exp/rand"
import "errors"
import "fmt"
import "io"
import "strconv"

type request struct {
	Command string

	// reverse, sort, middle
	Values []string

	// merge
	A, B []string

	// random
	Count int
	Max   int
	Seed  uint64
}

var errEmptyMiddle = errors.New("an empty list has no middle node")

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseString(s string) (string, error) {
	return s, nil
}

func run(w io.Writer, cfg *config.Config, req *request) error {
	switch req.Command {
	case "demo":
		return runDemo(w, cfg.Strategy)
	case "random":
		return runRandom(w, cfg.Strategy, req)
	}

	switch cfg.Type {
	case "int":
		return runTyped(w, cfg.Strategy, req, strconv.Atoi)
	case "float":
		return runTyped(w, cfg.Strategy, req, parseFloat)
	case "string":
		return runTyped(w, cfg.Strategy, req, parseString)
	default:
		return fmt.Errorf("unsupported element type %q", cfg.Type)
	}
}

func parseList[T constraints.Ordered](values []string, parse func(string) (T, error)) (*linkedlist.List[T], error) {
	l := linkedlist.New[T]()
	for _, s := range values {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		l.Append(v)
	}
	return l, nil
}

func sortList[T constraints.Ordered](l *linkedlist.List[T], strategy string) {
	if strategy == "bottomup" {
		l.SortFunc(func(a, b T) bool {
			return a < b
		})
		return
	}

	l.Sort()
}

func runTyped[T constraints.Ordered](w io.Writer, strategy string, req *request, parse func(string) (T, error)) error {
	if req.Command == "merge" {
		return runMerge(w, req, parse)
	}

	l, err := parseList(req.Values, parse)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "input: %v\n", l)

	switch req.Command {
	case "reverse":
		l.Reverse()
		fmt.Fprintf(w, "reversed: %v\n", l)

	case "sort":
		sortList(l, strategy)
		fmt.Fprintf(w, "sorted: %v\n", l)

	case "middle":
		if l.IsEmpty() {
			return errEmptyMiddle
		}
		fmt.Fprintf(w, "middle: %v\n", linkedlist.FindMiddle(l.Head()).Value)

	default:
		return fmt.Errorf("unknown command %q", req.Command)
	}

	return nil
}

func runMerge[T constraints.Ordered](w io.Writer, req *request, parse func(string) (T, error)) error {
	a, err := parseList(req.A, parse)
	if err != nil {
		return err
	}

	b, err := parseList(req.B, parse)
	if err != nil {
		return err
	}

	if !a.IsSorted() {
		return fmt.Errorf("first list is not sorted: %v", a)
	}
	if !b.IsSorted() {
		return fmt.Errorf("second list is not sorted: %v", b)
	}

	fmt.Fprintf(w, "a: %v\n", a)
	fmt.Fprintf(w, "b: %v\n", b)
	fmt.Fprintf(w, "merged: %v\n", linkedlist.Merge(a, b))
	return nil
}

func runDemo(w io.Writer, strategy string) error {
	l1 := linkedlist.New[int]()
	l2 := linkedlist.New[int]()
	for _, v := range []int{1, 3, 5} {
		l1.Append(v)
	}
	for _, v := range []int{2, 4, 6} {
		l2.Append(v)
	}

	fmt.Fprintf(w, "List 1:\n%v\n", l1)
	fmt.Fprintf(w, "List 2:\n%v\n", l2)

	l1.Reverse()
	fmt.Fprintf(w, "Reversed List 1:\n%v\n", l1)

	sortList(l1, strategy)
	fmt.Fprintf(w, "Sorted List 1:\n%v\n", l1)

	merged := linkedlist.FromChain(linkedlist.MergeTwoSorted(l1.Detach(), l2.Detach()))
	fmt.Fprintf(w, "Merged Sorted List:\n%v\n", merged)
	return nil
}

func randomList(count, max int, seed uint64) *linkedlist.List[int] {
	r := rand.New(rand.NewSource(seed))
	l := linkedlist.New[int]()
	for i := 0; i < count; i++ {
		l.Append(r.Intn(max))
	}
	return l
}

func runRandom(w io.Writer, strategy string, req *request) error {
	if req.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", req.Count)
	}
	if req.Max <= 0 {
		return fmt.Errorf("max must be positive, got %d", req.Max)
	}

	l := randomList(req.Count, req.Max, req.Seed)
	fmt.Fprintf(w, "input: %v\n", l)

	sortList(l, strategy)
	fmt.Fprintf(w, "sorted: %v\n", l)
	return nil
}
