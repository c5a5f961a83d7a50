package search

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cheng762/coin-search/service/data_adaptor"
)

var en = language.AmericanEnglish

func TestBuildView_LoadingIgnoresQuery(t *testing.T) {
	for _, q := range []string{"", "bit", "zzz", "ETH"} {
		v := BuildView(Loading(), q, en)
		assert.Equal(t, ViewLoading, v.Kind, "query %q", q)
		assert.Equal(t, LoadingMessage, v.Message)
		assert.Empty(t, v.Cards)
	}
}

func TestBuildView_FailedIgnoresQuery(t *testing.T) {
	for _, q := range []string{"", "bit", "zzz"} {
		v := BuildView(Failed("connection reset by peer"), q, en)
		assert.Equal(t, ViewFailed, v.Kind)
		assert.Equal(t, "Failed to fetch cryptocurrency data.", v.Message)
		assert.Empty(t, v.Cards)
	}
}

func TestBuildView_EmptyQueryPrompts(t *testing.T) {
	state := Loaded([]data_adaptor.CoinRecord{
		coin("bitcoin", "Bitcoin", "btc"),
		coin("ethereum", "Ethereum", "eth"),
	})

	v := BuildView(state, "", en)
	assert.Equal(t, ViewPrompt, v.Kind)
	assert.Equal(t, PromptMessage, v.Message)
	assert.Empty(t, v.Cards)
}

func TestBuildView_NoResults(t *testing.T) {
	state := Loaded([]data_adaptor.CoinRecord{coin("bitcoin", "Bitcoin", "btc")})

	v := BuildView(state, "zzz", en)
	assert.Equal(t, ViewNoResults, v.Kind)
	assert.Equal(t, NoResultsMessage, v.Message)
	assert.Empty(t, v.Cards)
}

func TestBuildView_EmptySnapshotWithQuery(t *testing.T) {
	v := BuildView(Loaded(nil), "btc", en)
	assert.Equal(t, ViewNoResults, v.Kind)
}

func TestBuildView_Cards(t *testing.T) {
	btc := data_adaptor.CoinRecord{
		ID:           "bitcoin",
		Name:         "Bitcoin",
		Symbol:       "btc",
		ImageURL:     "https://img/btc.png",
		CurrentPrice: decimal.RequireFromString("67234.51"),
		MarketCap:    decimal.RequireFromString("1324567890123"),
	}
	state := Loaded([]data_adaptor.CoinRecord{
		btc,
		coin("bitconnect", "Bitconnect", "bcc"),
		coin("ethereum", "Ethereum", "eth"),
	})

	v := BuildView(state, "bit", en)
	require.Equal(t, ViewResults, v.Kind)
	assert.Empty(t, v.Message)
	require.Len(t, v.Cards, 2)

	assert.Equal(t, Card{
		ID:        "bitcoin",
		Name:      "Bitcoin",
		Symbol:    "BTC",
		ImageURL:  "https://img/btc.png",
		Title:     "Bitcoin (BTC)",
		Price:     "$67,234.51",
		MarketCap: "$1,324,567,890,123",
	}, v.Cards[0])
	assert.Equal(t, "bitconnect", v.Cards[1].ID)
	assert.Equal(t, "Bitconnect (BCC)", v.Cards[1].Title)
}

func TestAcknowledge(t *testing.T) {
	assert.Equal(t, "You clicked on Bitcoin!", Acknowledge("Bitcoin"))
}
