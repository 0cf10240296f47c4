package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantFirst int
		wantLen   int
	}{
		{name: "first page", page: 1, pageSize: 10, wantFirst: 0, wantLen: 10},
		{name: "second page", page: 2, pageSize: 10, wantFirst: 10, wantLen: 10},
		{name: "partial last page", page: 3, pageSize: 10, wantFirst: 20, wantLen: 5},
		{name: "past the end", page: 4, pageSize: 10, wantLen: 0},
		{name: "page size covers everything", page: 1, pageSize: 200, wantFirst: 0, wantLen: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.page, tt.pageSize)

			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, 25, p.Total)
			assert.Len(t, p.Items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, p.Items[0])
			}
		})
	}
}

func TestPaginate_HugePageYieldsEmptySlice(t *testing.T) {
	items := []int{1, 2, 3}

	tests := []struct {
		name string
		page int
	}{
		{name: "offset arithmetic would overflow", page: 92233720368547759},
		{name: "max int page", page: int(^uint(0) >> 1)},
		{name: "merely far past the end", page: 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.page, 200)

			assert.Equal(t, 3, p.Total)
			assert.NotNil(t, p.Items)
			assert.Len(t, p.Items, 0)
		})
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	p := Paginate([]string{}, 1, 50)

	assert.Equal(t, 0, p.Total)
	assert.NotNil(t, p.Items)
	assert.Len(t, p.Items, 0)
}
