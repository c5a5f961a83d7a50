package data_adaptor

import "github.com/shopspring/decimal"

// CoinRecord 行情快照中的一条记录，拉取后不再修改
type CoinRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	ImageURL     string          `json:"image"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketCap    decimal.Decimal `json:"market_cap"`
}

// CoinGecko market response (partial)
// 数值字段用指针区分 null 与 0
type cgMarket struct {
	ID           string           `json:"id"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Image        string           `json:"image"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	MarketCap    *decimal.Decimal `json:"market_cap"`
}
