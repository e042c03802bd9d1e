package applemartapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCollection(t *testing.T) {
	t.Run("should extract nested values envelope", func(t *testing.T) {
		body := []byte(`{"$id":"1","orders":{"$id":"2","$values":[{"orderID":1},{"orderID":2}]}}`)

		records := extractCollection(body, "orders")

		require.Len(t, records, 2)
		assert.JSONEq(t, `{"orderID":1}`, string(records[0]))
	})

	t.Run("should extract plain field array", func(t *testing.T) {
		body := []byte(`{"orders":[{"orderID":1}]}`)

		records := extractCollection(body, "orders")

		require.Len(t, records, 1)
	})

	t.Run("should extract bare array", func(t *testing.T) {
		body := []byte(`[{"orderID":1},{"orderID":2},{"orderID":3}]`)

		records := extractCollection(body, "orders")

		require.Len(t, records, 3)
	})

	t.Run("should extract top-level values envelope", func(t *testing.T) {
		body := []byte(`{"$id":"1","$values":[{"notificationID":5}]}`)

		records := extractCollection(body, "notifications")

		require.Len(t, records, 1)
	})

	t.Run("should accept bare values key variant", func(t *testing.T) {
		body := []byte(`{"orders":{"values":[{"orderID":1}]}}`)

		records := extractCollection(body, "orders")

		require.Len(t, records, 1)
	})

	t.Run("should prefer the named field over top-level values", func(t *testing.T) {
		body := []byte(`{"orders":[{"orderID":1}],"$values":[{"orderID":2},{"orderID":3}]}`)

		records := extractCollection(body, "orders")

		require.Len(t, records, 1)
		assert.JSONEq(t, `{"orderID":1}`, string(records[0]))
	})

	t.Run("should return nil for unknown shapes", func(t *testing.T) {
		unknownShapes := [][]byte{
			[]byte(`{"data":[{"orderID":1}]}`),
			[]byte(`{"orders":"not an array"}`),
			[]byte(`"just a string"`),
			[]byte(`42`),
			[]byte(`{}`),
			[]byte(`not json at all`),
			nil,
		}

		for _, body := range unknownShapes {
			assert.Nil(t, extractCollection(body, "orders"), "shape %q should not match", body)
		}
	})

	t.Run("should handle empty collections", func(t *testing.T) {
		records := extractCollection([]byte(`{"orders":{"$values":[]}}`), "orders")

		require.NotNil(t, records)
		assert.Empty(t, records)
	})
}

func TestBackendErrorMessage(t *testing.T) {
	t.Run("should prefer the message field", func(t *testing.T) {
		body := []byte(`{"message":"Order status cannot be changed","errors":{"NewStatus":["invalid"]}}`)

		assert.Equal(t, "Order status cannot be changed", backendErrorMessage(body, "fallback"))
	})

	t.Run("should fall back to NewStatus field errors", func(t *testing.T) {
		body := []byte(`{"errors":{"NewStatus":["The NewStatus field is required."]}}`)

		assert.Equal(t, "The NewStatus field is required.", backendErrorMessage(body, "fallback"))
	})

	t.Run("should fall back to other field errors in stable order", func(t *testing.T) {
		body := []byte(`{"errors":{"ZField":["z problem"],"AField":["a problem"]}}`)

		assert.Equal(t, "a problem", backendErrorMessage(body, "fallback"))
	})

	t.Run("should use fallback when nothing is extractable", func(t *testing.T) {
		bodies := [][]byte{
			[]byte(`{}`),
			[]byte(`{"errors":{}}`),
			[]byte(`not json`),
			nil,
		}

		for _, body := range bodies {
			assert.Equal(t, "fallback", backendErrorMessage(body, "fallback"))
		}
	})
}
