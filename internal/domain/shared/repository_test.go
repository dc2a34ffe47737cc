package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterOffset(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"first page", Filter{Page: 1, PageSize: 20}, 0},
		{"third page", Filter{Page: 3, PageSize: 25}, 50},
		{"zero page clamps", Filter{Page: 0, PageSize: 20}, 0},
		{"negative page clamps", Filter{Page: -2, PageSize: 20}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Offset())
		})
	}
}

func TestNewPaginated(t *testing.T) {
	items := []string{"cash", "brokerage"}

	t.Run("rounds total pages up", func(t *testing.T) {
		p := NewPaginated(items, 41, 1, 20)
		assert.Equal(t, int64(41), p.Total)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("exact multiple", func(t *testing.T) {
		p := NewPaginated(items, 40, 2, 20)
		assert.Equal(t, 2, p.TotalPages)
	})

	t.Run("zero page size leaves zero pages", func(t *testing.T) {
		p := NewPaginated(items, 41, 1, 0)
		assert.Equal(t, 0, p.TotalPages)
	})
}
