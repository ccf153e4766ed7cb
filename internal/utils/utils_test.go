package utils

import (
	"slices"
	"testing"
)

func TestDistinct(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"keeps first occurrence", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"empty", nil, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distinct(tc.items); !slices.Equal(got, tc.want) {
				t.Errorf("Distinct = %v, want %v", got, tc.want)
			}
		})
	}
}
