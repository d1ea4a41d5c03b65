// Package state holds the client-side data store backing a cafe dashboard.
// Each resource lives in its own slice with the same shape: fetch replaces,
// create appends, update replaces by id, delete removes by id. Live push
// events land through the same apply path as regular calls.
package state

import (
	"sync"

	"github.com/fevziatanoglu/cafe-management/client"
)

// Store wires every slice to one API client. It is plain dependency
// injection: build one per session and pass it down, there is no package
// level instance.
type Store struct {
	Orders   *Orders
	Tables   *Tables
	Products *Products
	Staff    *Staff
	Cafe     *Cafe
	Session  *Session
	Modal    *Modal
}

func New(api *client.Client) *Store {
	session := NewSession(api.Auth())
	api.SetTokenSource(session)

	return &Store{
		Orders:   NewOrders(api.Orders()),
		Tables:   NewTables(api.Tables()),
		Products: NewProducts(api.Products()),
		Staff:    NewStaff(api.Staff()),
		Cafe:     NewCafe(api.Cafes()),
		Session:  session,
		Modal:    NewModal(),
	}
}

// notifier is the subscription base embedded by every slice. Callbacks fire
// after each state change, outside the slice lock.
type notifier struct {
	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Subscribe registers a change callback and returns its unsubscribe func.
func (n *notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}

	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
