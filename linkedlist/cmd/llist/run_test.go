package main

import "github.com/NataliiaYakorieva/goit-algo-fp/config"
import "bytes"
import "errors"
import "strings"
import "testing"

type test struct {
	Type     string
	Strategy string
	Req      request
	Out      string
}

var tests = []test{
	{
		Type: "int",
		Req:  request{Command: "reverse", Values: []string{"1", "3", "5"}},
		Out:  "input: 1 -> 3 -> 5 -> None\nreversed: 5 -> 3 -> 1 -> None\n",
	},
	{
		Type: "int",
		Req:  request{Command: "reverse"},
		Out:  "input: None\nreversed: None\n",
	},
	{
		Type: "int",
		Req:  request{Command: "sort", Values: []string{"5", "3", "1"}},
		Out:  "input: 5 -> 3 -> 1 -> None\nsorted: 1 -> 3 -> 5 -> None\n",
	},
	{
		Type:     "int",
		Strategy: "bottomup",
		Req:      request{Command: "sort", Values: []string{"4", "-2", "9", "0"}},
		Out:      "input: 4 -> -2 -> 9 -> 0 -> None\nsorted: -2 -> 0 -> 4 -> 9 -> None\n",
	},
	{
		Type: "float",
		Req:  request{Command: "sort", Values: []string{"2.5", "0.5", "1"}},
		Out:  "input: 2.5 -> 0.5 -> 1 -> None\nsorted: 0.5 -> 1 -> 2.5 -> None\n",
	},
	{
		Type: "string",
		Req:  request{Command: "sort", Values: []string{"pear", "apple"}},
		Out:  "input: pear -> apple -> None\nsorted: apple -> pear -> None\n",
	},
	{
		Type: "int",
		Req:  request{Command: "middle", Values: []string{"1", "2", "3", "4"}},
		Out:  "input: 1 -> 2 -> 3 -> 4 -> None\nmiddle: 2\n",
	},
	{
		Type: "int",
		Req:  request{Command: "merge", A: []string{"1", "3", "5"}, B: []string{"2", "4", "6"}},
		Out:  "a: 1 -> 3 -> 5 -> None\nb: 2 -> 4 -> 6 -> None\nmerged: 1 -> 2 -> 3 -> 4 -> 5 -> 6 -> None\n",
	},
	{
		Type: "string",
		Req:  request{Command: "merge", A: []string{"b"}, B: nil},
		Out:  "a: b -> None\nb: None\nmerged: b -> None\n",
	},
	{
		Req: request{Command: "demo"},
		Out: "List 1:\n1 -> 3 -> 5 -> None\n" +
			"List 2:\n2 -> 4 -> 6 -> None\n" +
			"Reversed List 1:\n5 -> 3 -> 1 -> None\n" +
			"Sorted List 1:\n1 -> 3 -> 5 -> None\n" +
			"Merged Sorted List:\n1 -> 2 -> 3 -> 4 -> 5 -> 6 -> None\n",
	},
}

func TestRun(t *testing.T) {
	for _, tst := range tests {
		cfg := config.Default()
		if tst.Type != "" {
			cfg.Type = tst.Type
		}
		if tst.Strategy != "" {
			cfg.Strategy = tst.Strategy
		}

		buf := bytes.Buffer{}
		req := tst.Req
		err := run(&buf, &cfg, &req)
		if err != nil {
			t.Fatalf("%s %v: unexpected error: %v", req.Command, req.Values, err)
		}

		if buf.String() != tst.Out {
			t.Fatalf("%s: got %#v, expected %#v", req.Command, buf.String(), tst.Out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	cfg := config.Default()
	reqs := []request{
		{Command: "sort", Values: []string{"1", "x"}},
		{Command: "merge", A: []string{"3", "1"}, B: []string{"2"}},
		{Command: "merge", A: []string{"1"}, B: []string{"2", "0"}},
		{Command: "middle", Values: []string{}},
		{Command: "random", Count: 3, Max: 0},
		{Command: "random", Count: -1, Max: 10},
	}

	for _, req := range reqs {
		req := req
		if err := run(&bytes.Buffer{}, &cfg, &req); err == nil {
			t.Fatalf("%+v: expected error", req)
		}
	}

	err := run(&bytes.Buffer{}, &cfg, &request{Command: "middle"})
	if !errors.Is(err, errEmptyMiddle) {
		t.Fatalf("got %v, expected %v", err, errEmptyMiddle)
	}
}

func TestRandom(t *testing.T) {
	for _, strategy := range config.Strategies {
		l := randomList(50, 10, 7)
		if l.Len() != 50 {
			t.Fatalf("got %d values, expected 50", l.Len())
		}
		for _, v := range l.Values() {
			if v < 0 || v >= 10 {
				t.Fatalf("value %d out of range", v)
			}
		}

		sortList(l, strategy)
		if !l.IsSorted() {
			t.Fatalf("%s: random list not sorted: %v", strategy, l)
		}
	}

	cfg := config.Default()
	buf := bytes.Buffer{}
	err := run(&buf, &cfg, &request{Command: "random", Count: 5, Max: 100, Seed: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "input: ") || !strings.HasPrefix(lines[1], "sorted: ") {
		t.Fatalf("got %#v", buf.String())
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList("1,,3,"); len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("got %#v", got)
	}
	if got := splitList(""); len(got) != 0 {
		t.Fatalf("got %#v", got)
	}
}
