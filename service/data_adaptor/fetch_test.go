package data_adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const marketsBody = `[
  {"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","current_price":67234.51,"market_cap":1324567890123,"market_cap_rank":1},
  {"id":"ethereum","symbol":"eth","name":"Ethereum","image":"https://img/eth.png","current_price":3456.7,"market_cap":415000000000,"sparkline_in_7d":null},
  {"id":"tether","symbol":"usdt","name":"Tether","image":"https://img/usdt.png","current_price":1,"market_cap":110000000000}
]`

func newTestFetcher(t *testing.T, h http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewFetcher(FetcherOptions{BaseURL: srv.URL + "/api/v3"}, zaptest.NewLogger(t))
}

func TestFetchMarkets_QueryAndOrder(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/coins/markets", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "usd", q.Get("vs_currency"))
		assert.Equal(t, "market_cap_desc", q.Get("order"))
		assert.Equal(t, "250", q.Get("per_page"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "false", q.Get("sparkline"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("x-cg-demo-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(marketsBody))
	})

	records, err := f.FetchMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "bitcoin", records[0].ID)
	assert.Equal(t, "ethereum", records[1].ID)
	assert.Equal(t, "tether", records[2].ID)
	assert.Equal(t, "Bitcoin", records[0].Name)
	assert.Equal(t, "btc", records[0].Symbol)
	assert.Equal(t, "https://img/btc.png", records[0].ImageURL)
	assert.Equal(t, "67234.51", records[0].CurrentPrice.String())
	assert.Equal(t, "1324567890123", records[0].MarketCap.String())
}

func TestFetchMarkets_SendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "demo-key", r.Header.Get("x-cg-demo-api-key"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	f := NewFetcher(FetcherOptions{BaseURL: srv.URL + "/", APIKey: "demo-key"}, nil)
	records, err := f.FetchMarkets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchMarkets_NonSuccessStatus(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status":{"error_code":429}}`))
	})

	records, err := f.FetchMarkets(context.Background())
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.Contains(t, err.Error(), "429")
}

func TestFetchMarkets_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	f := NewFetcher(FetcherOptions{BaseURL: base}, zaptest.NewLogger(t))
	_, err := f.FetchMarkets(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
}

func TestFetchMarkets_MalformedBody(t *testing.T) {
	cases := map[string]string{
		"object":    `{"error":"nope"}`,
		"truncated": `[{"id":"bitcoin"`,
		"null":      `null`,
		"html":      `<html></html>`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := f.FetchMarkets(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))
		})
	}
}

func TestFetchMarkets_SkipsMalformedRecords(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
		  {"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":1,"market_cap":2},
		  {"id":"noname","symbol":"nn","current_price":1,"market_cap":2},
		  {"id":"noprice","symbol":"np","name":"No Price","current_price":null,"market_cap":2},
		  {"id":"negative","symbol":"neg","name":"Negative","current_price":-1,"market_cap":2},
		  {"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":0,"market_cap":0}
		]`))
	})

	records, err := f.FetchMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "bitcoin", records[0].ID)
	assert.Equal(t, "ethereum", records[1].ID)
	assert.True(t, records[1].CurrentPrice.IsZero())
}

func TestFetchMarkets_ContextCanceled(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(marketsBody))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchMarkets(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
}
