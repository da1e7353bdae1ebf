package tiaoqi

import "sort"

// moveDelta 着法带来的“前进量”（dst 与 src 的距离差）
func moveDelta(m Move) int { return distances[m.Dst] - distances[m.Src] }

// LegalMoves 生成走子方全部合法着法：
// 单步 = 相邻格去掉双方占位；跳跃由 jumpMoves 做递归闭包。
// 结果按启发式排序，最“向前”的着法排最前（绿方取距离差降序，红方升序）。
func (g *GameState) LegalMoves() []Move {
	occupied := g.board[Red].Or(g.board[Green])
	var moves []Move
	for from := g.board[g.turn]; !from.IsZero(); {
		src := from.HighestBit()
		from.Clear(src)
		to := adjMasks[src].AndNot(occupied)
		jumpMoves(src, occupied, &to)
		for t := to; !t.IsZero(); {
			dst := t.HighestBit()
			t.Clear(dst)
			moves = append(moves, Move{Src: src, Dst: dst})
		}
	}
	if g.turn == Green {
		sort.SliceStable(moves, func(i, j int) bool {
			return moveDelta(moves[i]) > moveDelta(moves[j])
		})
	} else {
		sort.SliceStable(moves, func(i, j int) bool {
			return moveDelta(moves[i]) < moveDelta(moves[j])
		})
	}
	return moves
}

// jumpMoves 从 src 出发累积全部可达跳点。
// 跳表按“相邻格占位模式”查落点，去掉已占格后并入 to；
// 一次递归没有新增格子就到达不动点，保证终止——
// 生成期间占位掩码不变，可达集只增不减。
func jumpMoves(src int, occupied Mask, to *Mask) {
	jumps := jumpMasks[src][adjMasks[src].And(occupied)]
	jumps = jumps.AndNot(occupied)
	if jumps.Or(*to) == *to {
		return
	}
	*to = to.Or(jumps)
	for j := jumps; !j.IsZero(); {
		dst := j.HighestBit()
		j.Clear(dst)
		jumpMoves(dst, occupied, to)
	}
}
