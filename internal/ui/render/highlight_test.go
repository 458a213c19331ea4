package render

import (
	"reflect"
	"testing"
)

func TestHighlightIndices(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []int
	}{
		{"empty query", "foo", "", nil},
		{"greedy subsequence", "foo-test", "ft", []int{0, 4}},
		{"case insensitive", "Foo-Test", "ft", []int{0, 4}},
		{"prefix run", "abcdef", "abc", []int{0, 1, 2}},
		{"partial consume stops", "abc", "abz", []int{0, 1}},
		{"no match at all", "abc", "zz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighlightIndices(tt.text, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("HighlightIndices(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.want)
			}
		})
	}
}
