package tiaoqi

import "sync"

// 走子方的哈希盐，固定常量
const zobristSide = 0xc503204d9e521ac5

var (
	zobristOnce  sync.Once
	zobristCells [2][NumCells]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for sq := 0; sq < NumCells; sq++ {
				v := next()
				for v == 0 {
					v = next()
				}
				zobristCells[side][sq] = v
			}
		}
	})
}

func cellSalt(side Side, sq int) uint64 {
	initZobrist()
	return zobristCells[side][sq]
}

// CalculateHash 全量计算当前局面的哈希
func (g *GameState) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for side := Red; side <= Green; side++ {
		for x := g.board[side]; !x.IsZero(); {
			sq := x.HighestBit()
			x.Clear(sq)
			h ^= zobristCells[side][sq]
		}
	}
	if g.turn == Green {
		h ^= zobristSide
	}
	return h
}

// Hash 第一次读取时全量计算，之后由 ApplyMove/UndoMove 增量维护。
// 0 作为“未计算”哨兵。
func (g *GameState) Hash() uint64 {
	if g.hash == 0 {
		g.hash = g.CalculateHash()
	}
	return g.hash
}
