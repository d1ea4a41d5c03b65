package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalSingleSlot(t *testing.T) {
	m := NewModal()

	_, _, open := m.Current()
	assert.False(t, open)

	m.Open("create-order", map[string]string{"tableId": "7"})

	kind, payload, open := m.Current()
	require.True(t, open)
	assert.Equal(t, "create-order", kind)
	assert.Equal(t, map[string]string{"tableId": "7"}, payload)

	// opening another modal replaces the first
	m.Open("edit-product", "p1")

	kind, payload, open = m.Current()
	require.True(t, open)
	assert.Equal(t, "edit-product", kind)
	assert.Equal(t, "p1", payload)
	assert.False(t, m.IsOpen("create-order"))
	assert.True(t, m.IsOpen("edit-product"))
}

func TestModalClose(t *testing.T) {
	m := NewModal()
	m.Open("confirm-delete", nil)
	m.Close()

	kind, payload, open := m.Current()
	assert.False(t, open)
	assert.Empty(t, kind)
	assert.Nil(t, payload)
}

func TestModalNotifies(t *testing.T) {
	m := NewModal()

	var calls int
	m.Subscribe(func() { calls++ })

	m.Open("create-order", nil)
	m.Close()

	assert.Equal(t, 2, calls)
}
