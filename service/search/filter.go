package search

import (
	"strings"

	"github.com/cheng762/coin-search/service/data_adaptor"
)

// Filter 返回 name 或 symbol 包含 query（不区分大小写）的记录，保持原有顺序。
// 空 query 匹配全部；是否展示由 BuildView 决定。
func Filter(coins []data_adaptor.CoinRecord, query string) []data_adaptor.CoinRecord {
	q := strings.ToLower(query)
	out := make([]data_adaptor.CoinRecord, 0, len(coins))
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Symbol), q) {
			out = append(out, c)
		}
	}
	return out
}
