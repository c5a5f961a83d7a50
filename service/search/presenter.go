package search

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/cheng762/coin-search/service/data_adaptor"
)

var (
	ErrNotLoaded   = errors.New("market data not loaded")
	ErrUnknownCoin = errors.New("unknown coin")
)

// MarketSource 提供一次性的行情快照
type MarketSource interface {
	FetchMarkets(ctx context.Context) ([]data_adaptor.CoinRecord, error)
}

// Renderer 在 query 或 FetchState 变化后收到新的 View。
// 调用时持有 Presenter 的锁，不能回调 Presenter。
type Renderer func(View)

type Option func(*Presenter)

func WithRenderer(r Renderer) Option {
	return func(p *Presenter) { p.render = r }
}

func WithLocale(tag language.Tag) Option {
	return func(p *Presenter) { p.tag = tag }
}

// Presenter 持有 FetchState 和搜索词，所有状态只通过方法修改
type Presenter struct {
	source MarketSource
	logger *zap.Logger
	tag    language.Tag
	render Renderer

	mu      sync.Mutex
	state   FetchState
	query   string
	started bool
	closed  bool
	done    chan struct{}
}

func NewPresenter(source MarketSource, logger *zap.Logger, opts ...Option) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Presenter{
		source: source,
		logger: logger,
		tag:    language.AmericanEnglish,
		state:  Loading(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Initialize 执行唯一一次拉取，阻塞到请求结束。重复调用直接返回。
// Close 之后才返回的结果会被丢弃。
func (p *Presenter) Initialize(ctx context.Context) {
	p.mu.Lock()
	if p.started || p.closed {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	coins, err := p.source.FetchMarkets(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	defer close(p.done)

	if p.closed {
		p.logger.Debug("presenter closed before fetch completed, result discarded")
		return
	}
	if err != nil {
		p.logger.Error("failed to fetch market data", zap.Error(err))
		p.state = Failed(FailedMessage)
	} else {
		p.state = Loaded(coins)
	}
	p.emitLocked()
}

// Done 在拉取结束（或未拉取就 Close）后关闭
func (p *Presenter) Done() <-chan struct{} {
	return p.done
}

func (p *Presenter) SetQuery(q string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.query = q
	p.emitLocked()
}

func (p *Presenter) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Presenter) State() FetchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// View 按当前状态和搜索词计算
func (p *Presenter) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return BuildView(p.state, p.query, p.tag)
}

// ViewFor 用给定的搜索词计算 View，不修改 Presenter 的搜索词
func (p *Presenter) ViewFor(query string) View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return BuildView(p.state, query, p.tag)
}

// Select 返回点击提示；只确认，不跳转
func (p *Presenter) Select(id string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Kind() != StateLoaded {
		return "", ErrNotLoaded
	}
	for _, c := range p.state.Coins() {
		if c.ID == id {
			p.logger.Info("coin selected", zap.String("id", c.ID))
			return Acknowledge(c.Name), nil
		}
	}
	return "", ErrUnknownCoin
}

// Close 之后不再更新状态，也不再调用 Renderer
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if !p.started {
		p.started = true
		close(p.done)
	}
}

func (p *Presenter) emitLocked() {
	if p.render == nil {
		return
	}
	p.render(BuildView(p.state, p.query, p.tag))
}
