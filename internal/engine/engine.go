package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// 默认置换表容量
const DefaultTTCapacity = 1 << 22

// Engine 持有搜索用到的全部可变状态。
// 置换表是显式资源：每个 Engine 自己一份，测试可以各建各的。
// 不支持并发搜索——同一时刻只允许一个 SearchBestMove 在跑。
type Engine struct {
	tt    *lru.Cache[uint64, ttEntry]
	nodes int64
}

func NewEngine(ttCapacity int) *Engine {
	if ttCapacity <= 0 {
		ttCapacity = DefaultTTCapacity
	}
	tt, err := lru.New[uint64, ttEntry](ttCapacity)
	if err != nil {
		// 容量已经保证为正，这里不可能失败
		panic(err)
	}
	return &Engine{tt: tt}
}

// ResetTable 清空置换表。引擎自己在两局之间不清表，
// 是否清由上层决定（服务器开新对局时会调）。
func (e *Engine) ResetTable() { e.tt.Purge() }

// TableLen 当前缓存条目数，给测试和诊断用
func (e *Engine) TableLen() int { return e.tt.Len() }
