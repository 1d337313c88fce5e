package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		content   []int
		number    int
		size      int
		total     int64
		wantPages int
		wantFirst bool
		wantLast  bool
		wantEmpty bool
	}{
		{name: "empty", content: nil, number: 0, size: 10, total: 0, wantPages: 0, wantFirst: true, wantLast: true, wantEmpty: true},
		{name: "first of three", content: []int{1, 2}, number: 0, size: 2, total: 5, wantPages: 3, wantFirst: true},
		{name: "last partial", content: []int{5}, number: 2, size: 2, total: 5, wantPages: 3, wantLast: true},
		{name: "exact", content: []int{1, 2}, number: 0, size: 2, total: 2, wantPages: 1, wantFirst: true, wantLast: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.content, tt.number, tt.size, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantFirst, p.First)
			assert.Equal(t, tt.wantLast, p.Last)
			assert.Equal(t, tt.wantEmpty, p.Empty)
			assert.NotNil(t, p.Content)
			assert.Equal(t, len(tt.content), p.NumberOfElements)
		})
	}
}
