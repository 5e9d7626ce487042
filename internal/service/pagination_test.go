package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		total         int64
		page          int
		pageSize      int
		wantPage      int
		wantSkip      int
		wantTotalPage int
	}{
		{
			name:  "first page of even split",
			total: 4, page: 1, pageSize: 2,
			wantPage: 1, wantSkip: 0, wantTotalPage: 2,
		},
		{
			name:  "second page",
			total: 4, page: 2, pageSize: 2,
			wantPage: 2, wantSkip: 2, wantTotalPage: 2,
		},
		{
			name:  "partial last page rounds up",
			total: 5, page: 1, pageSize: 2,
			wantPage: 1, wantSkip: 0, wantTotalPage: 3,
		},
		{
			name:  "zero total yields zero pages",
			total: 0, page: 1, pageSize: 2,
			wantPage: 1, wantSkip: 0, wantTotalPage: 0,
		},
		{
			name:  "page below one is clamped",
			total: 4, page: 0, pageSize: 2,
			wantPage: 1, wantSkip: 0, wantTotalPage: 2,
		},
		{
			name:  "negative page is clamped",
			total: 4, page: -3, pageSize: 2,
			wantPage: 1, wantSkip: 0, wantTotalPage: 2,
		},
		{
			name:  "page beyond last is not clamped down",
			total: 4, page: 9, pageSize: 2,
			wantPage: 9, wantSkip: 16, wantTotalPage: 2,
		},
		{
			name:  "page size one",
			total: 3, page: 2, pageSize: 1,
			wantPage: 2, wantSkip: 1, wantTotalPage: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := Paginate(tc.total, tc.page, tc.pageSize)

			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantSkip, p.Skip)
			assert.Equal(t, tc.wantTotalPage, p.TotalPages)
		})
	}
}
