package applemartapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListShippers(t *testing.T) {
	t.Run("should decode directory from reference envelope", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Shipper/all", r.URL.Path)
			_, _ = w.Write([]byte(`{"$id":"1","$values":[
				{"shipperID":"0d9ffea0-8a3f-4b74-a79c-3a9e40a1e6c1","name":"Grab Express","phoneNumber":"0900000001","pendingOrders":3},
				{"shipperID":"1b8c4a52-2f1d-4e8f-9a6b-7c5d3e2f1a0b","name":"GHN","phoneNumber":"0900000002"}
			]}`))
		})

		client := newTestClient(t, handler, "")
		shippers := client.ListShippers(context.Background())

		require.Len(t, shippers, 2)
		assert.Equal(t, "Grab Express", shippers[0].Name())
		assert.Equal(t, 3, shippers[0].PendingOrders())
		assert.Equal(t, "GHN", shippers[1].Name())
		assert.Zero(t, shippers[1].PendingOrders())
	})

	t.Run("should drop records without usable GUID or name", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"shippers":[
				{"shipperID":"0d9ffea0-8a3f-4b74-a79c-3a9e40a1e6c1","name":"Grab Express"},
				{"shipperID":"not-a-guid","name":"Broken"},
				{"name":"No GUID"},
				{"shipperID":"1b8c4a52-2f1d-4e8f-9a6b-7c5d3e2f1a0b"}
			]}`))
		})

		client := newTestClient(t, handler, "")
		shippers := client.ListShippers(context.Background())

		require.Len(t, shippers, 1)
		assert.Equal(t, "Grab Express", shippers[0].Name())
	})

	t.Run("should return empty slice on server error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusServiceUnavailable)
		})

		client := newTestClient(t, handler, "")
		shippers := client.ListShippers(context.Background())

		require.NotNil(t, shippers)
		assert.Empty(t, shippers)
	})
}
