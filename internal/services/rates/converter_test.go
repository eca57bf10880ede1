package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinConvertClient_Convert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert/btc/usd", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("amount"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","BTC":1,"USD":64023.11}`))
	}))
	defer server.Close()

	client := NewCoinConvertClientWithBaseURL(server.URL)
	value, err := client.Convert(context.Background(), "btc", "usd", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, "64023.11", value.String())
}

func TestCoinConvertClient_Convert_Errors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewCoinConvertClientWithBaseURL(server.URL)
		_, err := client.Convert(context.Background(), "btc", "usd", decimal.NewFromInt(1))
		assert.ErrorContains(t, err, "status 502")
	})

	t.Run("missing target symbol", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","BTC":1}`))
		}))
		defer server.Close()

		client := NewCoinConvertClientWithBaseURL(server.URL)
		_, err := client.Convert(context.Background(), "btc", "usd", decimal.NewFromInt(1))
		assert.ErrorContains(t, err, `missing "USD"`)
	})

	t.Run("non-numeric value", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","USD":"a lot"}`))
		}))
		defer server.Close()

		client := NewCoinConvertClientWithBaseURL(server.URL)
		_, err := client.Convert(context.Background(), "btc", "usd", decimal.NewFromInt(1))
		assert.ErrorContains(t, err, "not numeric")
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewCoinConvertClientWithBaseURL(server.URL)
		_, err := client.Convert(ctx, "btc", "usd", decimal.NewFromInt(1))
		assert.Error(t, err)
	})
}
