package engine

import "tiaoqi/internal/tiaoqi"

type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttLower
	ttUpper
)

// 置换表条目：某局面在剩余 depth 层搜索下得到的界
type ttEntry struct {
	Key      uint64
	Value    int
	Depth    int
	Flag     ttFlag
	BestMove tiaoqi.Move
}

// 查表；命中会刷新 LRU 新鲜度
func (e *Engine) probeTT(hash uint64) (ttEntry, bool) {
	return e.tt.Get(hash)
}

// 写表；满了淘汰最久未用的条目。哈希碰撞不做校验，
// 按已接受的近似处理（两个同哈希局面可能互相污染缓存界）。
func (e *Engine) storeTT(ent ttEntry) {
	e.tt.Add(ent.Key, ent)
}
