package tiaoqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Green  Side = 1
)

func opposite(side Side) Side {
	if side == Red {
		return Green
	}
	if side == Green {
		return Red
	}
	return NoSide
}

type Move struct {
	Src int `json:"src"`
	Dst int `json:"dst"`
}

// NullMove 表示“无着法”，搜索哨兵
var NullMove = Move{Src: -1, Dst: -1}

func (m Move) IsNull() bool { return m.Src < 0 || m.Dst < 0 }

// GameState = 双方占位 + 轮到谁走 + 回合数 + 增量哈希
// board 不相交；每方棋子数恒定（棋子只移动，不增减）。
type GameState struct {
	board [2]Mask
	turn  Side
	round int
	hash  uint64
}

func (g *GameState) Turn() Side { return g.turn }
func (g *GameState) Round() int { return g.round }

// Occupied 返回某一方的占位掩码
func (g *GameState) Occupied(side Side) Mask { return g.board[side] }

// Cells 按行主序展开棋盘，0=空，Red/Green 用 side 值 +1 表示（1=红 2=绿）
func (g *GameState) Cells() []int {
	out := make([]int, NumCells)
	for i := 0; i < NumCells; i++ {
		if g.board[Red].Test(i) {
			out[i] = 1
		} else if g.board[Green].Test(i) {
			out[i] = 2
		}
	}
	return out
}
