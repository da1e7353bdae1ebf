package tiaoqi

import (
	"strconv"
	"strings"
)

const defaultRound = 10

// Encode 文本局面：81 个字符按行主序，'0' 空 '1' 红 '2' 绿，
// 每 9 格用 '/' 分行；之后是走子方标记 r/g 和回合数。
func (g *GameState) Encode() string {
	var sb strings.Builder
	for i := 0; i < NumCells; i++ {
		switch {
		case g.board[Red].Test(i):
			sb.WriteByte('1')
		case g.board[Green].Test(i):
			sb.WriteByte('2')
		default:
			sb.WriteByte('0')
		}
		if i%BoardSize == BoardSize-1 && i != NumCells-1 {
			sb.WriteByte('/')
		}
	}
	if g.turn == Red {
		sb.WriteString(" r ")
	} else {
		sb.WriteString(" g ")
	}
	sb.WriteString(strconv.Itoa(g.round))
	return sb.String()
}

// DecodeState 解析文本局面。刻意宽松：未知字符跳过，
// 回合数解析失败时退回默认值而不是报错。
func DecodeState(s string) *GameState {
	g := &GameState{turn: Red, round: defaultRound}
	p := 0
	rest := ""
loop:
	for i, c := range s {
		switch c {
		case '0':
			p++
		case '1':
			if p < NumCells {
				g.board[Red].Set(p)
			}
			p++
		case '2':
			if p < NumCells {
				g.board[Green].Set(p)
			}
			p++
		case 'r':
			g.turn = Red
			rest = s[i+1:]
			break loop
		case 'g':
			g.turn = Green
			rest = s[i+1:]
			break loop
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
		g.round = n
	}
	g.Hash()
	return g
}
