package orderedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parentsfood/shopkit/internal/domain"
	"github.com/parentsfood/shopkit/internal/orderedit"
)

func TestComputeTotals_Empty(t *testing.T) {
	totals := orderedit.ComputeTotals(nil, 20)

	assert.Equal(t, float64(0), totals.SubTotal)
	assert.Equal(t, float64(20), totals.GrandTotal)
}

func TestComputeTotals_SumsLineTotals(t *testing.T) {
	items := []domain.OrderItem{
		{ProductID: "p1", Price: 50, Quantity: 2},
		{ProductID: "p2", Price: 30, Quantity: 1},
	}

	totals := orderedit.ComputeTotals(items, 20)

	assert.Equal(t, float64(130), totals.SubTotal)
	assert.Equal(t, float64(150), totals.GrandTotal)
}

func TestComputeTotals_GrandTotalIdentity(t *testing.T) {
	cases := []struct {
		name     string
		items    []domain.OrderItem
		shipping float64
	}{
		{"single line", []domain.OrderItem{{Price: 99, Quantity: 3}}, 60},
		{"free shipping", []domain.OrderItem{{Price: 10, Quantity: 1}, {Price: 20, Quantity: 5}}, 0},
		{"edited quantities", []domain.OrderItem{{Price: 45.5, Quantity: 2}, {Price: 12.25, Quantity: 4}}, 130},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := orderedit.ComputeTotals(tc.items, tc.shipping)
			assert.Equal(t, totals.SubTotal+tc.shipping, totals.GrandTotal)
		})
	}
}
