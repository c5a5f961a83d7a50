package data_adaptor

import (
	"errors"
	"strings"
)

var (
	// ErrNetwork 请求未完成或返回非 2xx
	ErrNetwork = errors.New("market data request failed")
	// ErrParse 响应体不是预期的 JSON 数组
	ErrParse = errors.New("market data response malformed")
)

// toRecord 校验单条行情，字段缺失或数值为负时返回 false
func toRecord(m cgMarket) (CoinRecord, bool) {
	if strings.TrimSpace(m.ID) == "" || strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Symbol) == "" {
		return CoinRecord{}, false
	}
	if m.CurrentPrice == nil || m.MarketCap == nil {
		return CoinRecord{}, false
	}
	if m.CurrentPrice.IsNegative() || m.MarketCap.IsNegative() {
		return CoinRecord{}, false
	}
	return CoinRecord{
		ID:           m.ID,
		Name:         m.Name,
		Symbol:       m.Symbol,
		ImageURL:     m.Image,
		CurrentPrice: *m.CurrentPrice,
		MarketCap:    *m.MarketCap,
	}, true
}
