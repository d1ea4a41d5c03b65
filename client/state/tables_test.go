package state

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

func newTables(t *testing.T, handler http.Handler) *Tables {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := client.New(srv.URL, zap.NewNop().Sugar())
	return NewTables(api.Tables())
}

func makeTableWithOrders(orderCount int) domain.TableWithOrders {
	table := domain.TableWithOrders{
		Table: domain.Table{
			ID:     primitive.NewObjectID(),
			Number: "7",
			Status: domain.TableStatusOccupied,
		},
	}
	for i := 0; i < orderCount; i++ {
		table.Orders = append(table.Orders, makeOrder(domain.OrderStatusPending))
	}
	return table
}

func TestTablesFetchReplacesList(t *testing.T) {
	fresh := []domain.TableWithOrders{makeTableWithOrders(2), makeTableWithOrders(0)}

	tables := newTables(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "tables fetched", fresh)
	}))

	env := tables.Fetch(context.Background())

	require.True(t, env.Success)
	got := tables.All()
	require.Len(t, got, 2)
	assert.Len(t, got[0].Orders, 2)
	assert.False(t, tables.Loading())
}

func TestTableUpdatePreservesJoinedOrders(t *testing.T) {
	joined := makeTableWithOrders(3)
	updated := joined.Table
	updated.Number = "12"
	updated.Status = domain.TableStatusReserved

	mux := http.NewServeMux()
	mux.HandleFunc("/tables/with-orders", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "tables fetched", []domain.TableWithOrders{joined})
	})
	mux.HandleFunc("/tables/"+joined.ID.Hex(), func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "table updated", updated)
	})

	tables := newTables(t, mux)

	require.True(t, tables.Fetch(context.Background()).Success)

	_, env := tables.Update(context.Background(), joined.ID.Hex(), client.TableRequest{Number: "12", Status: "reserved"})

	require.True(t, env.Success)
	got := tables.All()
	require.Len(t, got, 1)
	// table fields replaced, joined orders kept
	assert.Equal(t, "12", got[0].Number)
	assert.Equal(t, domain.TableStatusReserved, got[0].Status)
	assert.Len(t, got[0].Orders, 3)
}

func TestTableCreateAppendsWithEmptyOrders(t *testing.T) {
	created := domain.Table{ID: primitive.NewObjectID(), Number: "3", Status: domain.TableStatusEmpty}

	tables := newTables(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, true, "table created", created)
	}))

	_, env := tables.Create(context.Background(), client.TableRequest{Number: "3"})

	require.True(t, env.Success)
	got := tables.All()
	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
	assert.Empty(t, got[0].Orders)
}

func TestTableDeleteRemovesByID(t *testing.T) {
	target := makeTableWithOrders(0)

	mux := http.NewServeMux()
	mux.HandleFunc("/tables/with-orders", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "tables fetched", []domain.TableWithOrders{target})
	})
	mux.HandleFunc("/tables/"+target.ID.Hex(), func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "table deleted", nil)
	})

	tables := newTables(t, mux)
	require.True(t, tables.Fetch(context.Background()).Success)

	env := tables.Delete(context.Background(), target.ID.Hex())

	require.True(t, env.Success)
	assert.Empty(t, tables.All())
}
