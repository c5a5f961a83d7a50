package search

import "github.com/cheng762/coin-search/service/data_adaptor"

// StateKind 标识 FetchState 当前所处的分支
type StateKind int

const (
	StateLoading StateKind = iota
	StateLoaded
	StateFailed
)

func (k StateKind) String() string {
	switch k {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchState 是 Loading / Loaded / Failed 三选一，零值为 Loading
type FetchState struct {
	kind    StateKind
	coins   []data_adaptor.CoinRecord
	message string
}

func Loading() FetchState {
	return FetchState{kind: StateLoading}
}

func Loaded(coins []data_adaptor.CoinRecord) FetchState {
	return FetchState{kind: StateLoaded, coins: coins}
}

func Failed(message string) FetchState {
	return FetchState{kind: StateFailed, message: message}
}

func (s FetchState) Kind() StateKind { return s.kind }

// Coins 仅在 Loaded 时非空
func (s FetchState) Coins() []data_adaptor.CoinRecord { return s.coins }

// Message 仅在 Failed 时非空
func (s FetchState) Message() string { return s.message }
