package wc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/yarbelk/slimwc/lib/wc"
)

func TestTotal(t *testing.T) {
	var tests = []struct {
		name     string
		given    []wc.FileStats
		expected wc.FileStats
		ok       bool
	}{
		{"no sources", nil, wc.FileStats{}, false},
		{"one source", []wc.FileStats{{Filename: "a", Bytes: 3}}, wc.FileStats{}, false},
		{
			"sums, except longest",
			[]wc.FileStats{
				{Filename: "a", Bytes: 10, Characters: 10, Newlines: 2, Words: 3, Longest: 7},
				{Filename: "b", Bytes: 5, Characters: 5, Newlines: 1, Words: 1, Longest: 4},
				{Filename: "c", Bytes: 20, Characters: 20, Newlines: 0, Words: 4, Longest: 20},
			},
			wc.FileStats{Filename: "total", Bytes: 35, Characters: 35, Newlines: 3, Words: 8, Longest: 20},
			true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := wc.ResultsSet{Results: tt.given}.Total()
			if ok != tt.ok {
				t.Fatalf("expected ok %v, actual %v", tt.ok, ok)
			}
			if actual != tt.expected {
				t.Errorf("expected %+v, actual %+v", tt.expected, actual)
			}
		})
	}
}

func TestWithTotal(t *testing.T) {
	single := wc.ResultsSet{Results: []wc.FileStats{{Filename: "a", Words: 1}}}
	if d := cmp.Diff(single, single.WithTotal()); d != "" {
		t.Errorf("single source should be left alone (-want +got):\n%s", d)
	}

	two := wc.ResultsSet{Results: []wc.FileStats{{Filename: "a", Words: 1}, {Filename: "b", Words: 2}}}
	withTotal := two.WithTotal()
	if len(two.Results) != 2 {
		t.Errorf("original set modified: %+v", two.Results)
	}
	expected := []wc.FileStats{{Filename: "a", Words: 1}, {Filename: "b", Words: 2}, {Filename: "total", Words: 3}}
	if d := cmp.Diff(expected, withTotal.Results); d != "" {
		t.Errorf("results differ (-want +got):\n%s", d)
	}
}
