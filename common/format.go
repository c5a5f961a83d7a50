package common

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits 与浏览器 toLocaleString 的默认精度一致
const maxFractionDigits = 3

// FormatDecimal 按 locale 输出千分位数字，最多保留 3 位小数，不补尾零
func FormatDecimal(tag language.Tag, d decimal.Decimal) string {
	p := message.NewPrinter(tag)
	f := d.Round(maxFractionDigits).InexactFloat64()
	return p.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(maxFractionDigits)))
}

// FormatUSD 在 FormatDecimal 的结果前加上美元符号
func FormatUSD(tag language.Tag, d decimal.Decimal) string {
	return "$" + FormatDecimal(tag, d)
}

// ParseLocale 解析配置中的 locale，例如 "en-US"
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.AmericanEnglish, nil
	}
	return language.Parse(s)
}
