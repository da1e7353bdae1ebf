package tiaoqi

const (
	// 一方全部到达对角后的固定胜负分，压过任何位置分
	WinScore = 10000
)

// NewInitialState 返回初始局面：红先，回合计 1
func NewInitialState() *GameState {
	g := &GameState{
		board: [2]Mask{Red: initialRed, Green: initialGreen},
		turn:  Red,
		round: 1,
	}
	g.Hash()
	return g
}

// SetTurn 强制指定走子方（服务器以请求为准时用），同步重算哈希
func (g *GameState) SetTurn(side Side) {
	if side != Red && side != Green {
		return
	}
	if g.turn == side {
		return
	}
	g.turn = side
	g.hash = g.CalculateHash()
}

// Clone 深拷贝（值拷贝即可，Mask 是纯值类型）
func (g *GameState) Clone() *GameState {
	c := *g
	return &c
}

// ApplyMove 落子并换边；不做合法性检查，着法必须来自 LegalMoves。
// 哈希增量更新：异或掉 src 盐、异或上 dst 盐、翻转走子方盐。
func (g *GameState) ApplyMove(mv Move) {
	if g.hash != 0 {
		g.hash ^= cellSalt(g.turn, mv.Src)
		g.hash ^= cellSalt(g.turn, mv.Dst)
		g.hash ^= zobristSide
	}
	g.board[g.turn].Clear(mv.Src)
	g.board[g.turn].Set(mv.Dst)
	g.turn = opposite(g.turn)
	if g.turn == Red {
		g.round++
	}
}

// UndoMove 严格按 LIFO 撤销刚走过的那一步
func (g *GameState) UndoMove(mv Move) {
	g.turn = opposite(g.turn)
	g.board[g.turn].Clear(mv.Dst)
	g.board[g.turn].Set(mv.Src)
	if g.turn == Red {
		g.round--
	}
	if g.hash != 0 {
		g.hash ^= cellSalt(g.turn, mv.Src)
		g.hash ^= cellSalt(g.turn, mv.Dst)
		g.hash ^= zobristSide
	}
}

// IsGameOver 一方所有棋子进入对角区域即结束
func (g *GameState) IsGameOver() bool {
	redWin := true
	greenWin := true
	for x := g.board[Red]; !x.IsZero(); {
		sq := x.HighestBit()
		x.Clear(sq)
		if distances[sq] > goalDistance {
			redWin = false
		}
	}
	for x := g.board[Green]; !x.IsZero(); {
		sq := x.HighestBit()
		x.Clear(sq)
		if distances[sq] < maxDistance-goalDistance {
			greenWin = false
		}
	}
	return redWin || greenWin
}

// Evaluate 返回对走子方的启发分。
// 位置分求和，减去随“最落后棋子”逼近而按位衰减的惩罚项；
// 已达成胜利条件时直接给固定胜负分，压过所有位置项。
func (g *GameState) Evaluate() int {
	redScore, greenScore := 0, 0
	lastRed, lastGreen := maxDistance+1, maxDistance+1
	for x := g.board[Red]; !x.IsZero(); {
		sq := x.HighestBit()
		x.Clear(sq)
		mirror := NumCells - 1 - sq
		if distances[mirror] < lastRed {
			lastRed = distances[mirror]
		}
		redScore += cellScores[mirror]
	}
	for x := g.board[Green]; !x.IsZero(); {
		sq := x.HighestBit()
		x.Clear(sq)
		if distances[sq] < lastGreen {
			lastGreen = distances[sq]
		}
		greenScore += cellScores[sq]
	}
	redScore -= 1 << max(0, 4-lastRed)
	greenScore -= 1 << max(0, 4-lastGreen)
	if lastRed == maxDistance-goalDistance {
		redScore = WinScore
		greenScore = 0
	}
	if lastGreen == maxDistance-goalDistance {
		greenScore = WinScore
		redScore = 0
	}
	if g.turn == Red {
		return redScore - greenScore
	}
	return greenScore - redScore
}
