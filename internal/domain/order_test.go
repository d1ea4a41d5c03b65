package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Name: "latte", Price: 5, Quantity: 3},
			{Name: "cheesecake", Price: 10, Quantity: 1},
		},
	}

	assert.Equal(t, 25.0, order.ComputeTotal())
}

func TestComputeTotalEmptyOrder(t *testing.T) {
	var order Order
	assert.Equal(t, 0.0, order.ComputeTotal())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusPaid.Valid())
	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}
