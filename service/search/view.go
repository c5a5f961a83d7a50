package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/cheng762/coin-search/common"
	"github.com/cheng762/coin-search/service/data_adaptor"
)

const (
	LoadingMessage   = "Loading cryptocurrencies..."
	FailedMessage    = "Failed to fetch cryptocurrency data."
	PromptMessage    = "Please enter a search term to find cryptocurrencies."
	NoResultsMessage = "No cryptocurrencies found matching your search."
	Placeholder      = "Search by name or symbol..."
)

type ViewKind string

const (
	ViewLoading   ViewKind = "loading"
	ViewFailed    ViewKind = "failed"
	ViewPrompt    ViewKind = "prompt"
	ViewNoResults ViewKind = "no_results"
	ViewResults   ViewKind = "results"
)

// Card 一张结果卡片的展示数据
type Card struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	ImageURL  string `json:"image"`
	Title     string `json:"title"`
	Price     string `json:"currentPrice"`
	MarketCap string `json:"marketCap"`
}

// View 是 (FetchState, query) 的投影，每次渲染重新计算
type View struct {
	Kind    ViewKind `json:"kind"`
	Query   string   `json:"query"`
	Message string   `json:"message,omitempty"`
	Cards   []Card   `json:"cards,omitempty"`
}

// BuildView 依次判断 Loading、Failed，最后才根据 query 过滤
func BuildView(state FetchState, query string, tag language.Tag) View {
	v := View{Query: query}
	switch state.Kind() {
	case StateLoading:
		v.Kind = ViewLoading
		v.Message = LoadingMessage
		return v
	case StateFailed:
		v.Kind = ViewFailed
		v.Message = FailedMessage
		return v
	}

	if query == "" {
		v.Kind = ViewPrompt
		v.Message = PromptMessage
		return v
	}

	matches := Filter(state.Coins(), query)
	if len(matches) == 0 {
		v.Kind = ViewNoResults
		v.Message = NoResultsMessage
		return v
	}

	v.Kind = ViewResults
	v.Cards = make([]Card, 0, len(matches))
	for _, c := range matches {
		v.Cards = append(v.Cards, newCard(c, tag))
	}
	return v
}

func newCard(c data_adaptor.CoinRecord, tag language.Tag) Card {
	symbol := strings.ToUpper(c.Symbol)
	return Card{
		ID:        c.ID,
		Name:      c.Name,
		Symbol:    symbol,
		ImageURL:  c.ImageURL,
		Title:     fmt.Sprintf("%s (%s)", c.Name, symbol),
		Price:     common.FormatUSD(tag, c.CurrentPrice),
		MarketCap: common.FormatUSD(tag, c.MarketCap),
	}
}

// Acknowledge 点击卡片后的提示文字，不做跳转
func Acknowledge(name string) string {
	return fmt.Sprintf("You clicked on %s!", name)
}
