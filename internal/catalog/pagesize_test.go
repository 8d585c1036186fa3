package catalog_test

import (
	"testing"

	"github.com/kpeters/castdeck/internal/catalog"
)

func TestPageSizeFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 10},
		{320, 10},
		{1024, 10}, // breakpoint is inclusive
		{1025, 6},  // floor(1025/260)*2
		{1300, 10},
		{1560, 12},
		{2600, 20},
	}
	for _, tc := range tests {
		if got := catalog.PageSizeFor(tc.width); got != tc.want {
			t.Errorf("PageSizeFor(%d): expected %d, got %d", tc.width, tc.want, got)
		}
	}
}
