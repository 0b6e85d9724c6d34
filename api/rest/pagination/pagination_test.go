package pagination

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestHasMore(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		total   int64
		limit   uint64
		offset  uint64
		hasMore bool
	}{
		{"first page of many", 35, 40, 35, 0, true},
		{"last short page", 5, 40, 35, 35, false},
		{"exact fit", 40, 40, 40, 0, false},
		{"empty result", 0, 0, 10, 0, false},
		{"offset past end", 0, 40, 10, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewResponse([]int{}, tt.count, tt.total, tt.limit, tt.offset)
			require.Equal(t, tt.hasMore, resp.Pagination.HasMore)
		})
	}
}

func TestResponseShape(t *testing.T) {
	items := []string{"a", "b"}
	resp := NewResponse(items, len(items), 10, 2, 4)

	want := Pagination{Total: 10, Limit: 2, Offset: 4, HasMore: true}
	if diff := cmp.Diff(want, resp.Pagination); diff != "" {
		t.Fatalf("unexpected pagination (-want +got):\n%s", diff)
	}
	require.Equal(t, items, resp.Items)
}
