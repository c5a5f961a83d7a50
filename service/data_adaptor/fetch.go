package data_adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://api.coingecko.com/api/v3"
	DefaultUserAgent = "coin-search/1.0"

	marketsPath = "/coins/markets"
	// 一次拉取的条数，只取第一页
	marketsPageSize = 250
)

// FetcherOptions 是 Fetcher 的可配置项，查询参数本身是固定的
type FetcherOptions struct {
	BaseURL   string
	APIKey    string
	UserAgent string
}

// Fetcher 从 CoinGecko 拉取按市值排序的行情快照
type Fetcher struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewFetcher(opts FetcherOptions, logger *zap.Logger) *Fetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		userAgent:  opts.UserAgent,
		httpClient: newHTTPClient(),
		logger:     logger,
	}
}

// marketsURL 固定为 usd、市值降序、250 条、第 1 页、不带 sparkline
func (f *Fetcher) marketsURL() string {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(marketsPageSize))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	return f.baseURL + marketsPath + "?" + q.Encode()
}

// FetchMarkets 发起一次请求，按返回顺序输出记录。
// 返回的错误总是包装 ErrNetwork 或 ErrParse。
func (f *Fetcher) FetchMarkets(ctx context.Context) ([]CoinRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.marketsURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)
	if f.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", f.apiKey)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return nil, fmt.Errorf("%w: status %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	var out []cgMarket
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrParse)
	}

	records := make([]CoinRecord, 0, len(out))
	skipped := 0
	for _, m := range out {
		rec, ok := toRecord(m)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if skipped > 0 {
		f.logger.Debug("skipped malformed market records",
			zap.Int("skipped", skipped),
			zap.Int("total", len(out)),
		)
	}
	f.logger.Info("fetched market snapshot", zap.Int("records", len(records)))
	return records, nil
}
