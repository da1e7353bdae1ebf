package engine

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tiaoqi/internal/tiaoqi"
)

// 按格子下标拼出文本局面
func encodePosition(red, green []int, turn byte, round int) string {
	cells := make([]byte, tiaoqi.NumCells)
	for i := range cells {
		cells[i] = '0'
	}
	for _, sq := range red {
		cells[sq] = '1'
	}
	for _, sq := range green {
		cells[sq] = '2'
	}
	var sb strings.Builder
	for i, c := range cells {
		sb.WriteByte(c)
		if i%tiaoqi.BoardSize == tiaoqi.BoardSize-1 && i != tiaoqi.NumCells-1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(turn)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(round))
	return sb.String()
}

func sq(r, c int) int { return r*tiaoqi.BoardSize + c }

func TestSearchUsesBookInOpening(t *testing.T) {
	e := NewEngine(1 << 10)
	res, err := e.SearchBestMove(tiaoqi.NewInitialState(), SearchConfig{TimeLimit: time.Second})
	require.NoError(t, err)
	require.True(t, res.FromBook)
	require.False(t, res.BestMove.IsNull())
	require.Equal(t, 0, e.TableLen(), "book hit must not touch the table")
}

func TestSearchFindsWinningMove(t *testing.T) {
	// 绿方差一子进角：(4,8) 顶进 (5,8) 即胜
	green := []int{
		sq(8, 8), sq(7, 8), sq(8, 7), sq(6, 8), sq(7, 7),
		sq(8, 6), sq(6, 7), sq(7, 6), sq(8, 5), sq(4, 8),
	}
	red := []int{
		sq(0, 0), sq(0, 1), sq(0, 2), sq(0, 3), sq(0, 4),
		sq(1, 0), sq(1, 1), sq(1, 2), sq(1, 3), sq(1, 4),
	}
	st := tiaoqi.DecodeState(encodePosition(red, green, 'g', 20))

	e := NewEngine(1 << 12)
	res, err := e.SearchBestMove(st, SearchConfig{MaxDepth: 6, TimeLimit: 2 * time.Second})
	require.NoError(t, err)
	require.False(t, res.FromBook)
	require.Equal(t, tiaoqi.Move{Src: sq(4, 8), Dst: sq(5, 8)}, res.BestMove)
	require.Equal(t, tiaoqi.WinScore, res.Score)
}

func TestMTDFMatchesFullWindowSearch(t *testing.T) {
	st := tiaoqi.NewInitialState()
	for i := 0; i < 10; i++ {
		st.ApplyMove(st.LegalMoves()[0])
	}

	const depth = 3
	e1 := NewEngine(1 << 14)
	var p1 movePath
	got := e1.mtdf(st.Clone(), depth, 0, &p1, time.Time{})

	e2 := NewEngine(1 << 14)
	var p2 movePath
	want := e2.alphaBeta(st.Clone(), depth, -scoreInf, scoreInf, &p2, time.Time{})

	require.Equal(t, want, got)
}

func TestSearchTimeoutStillYieldsMove(t *testing.T) {
	st := tiaoqi.NewInitialState()
	for i := 0; i < 10; i++ {
		st.ApplyMove(st.LegalMoves()[0])
	}
	require.Greater(t, st.Round(), tiaoqi.BookRounds)

	e := NewEngine(1 << 12)
	res, err := e.SearchBestMove(st, SearchConfig{TimeLimit: time.Nanosecond})
	require.NoError(t, err)
	require.True(t, res.TimedOut)
	require.False(t, res.BestMove.IsNull(), "timeout must still report the best move so far")
	require.Equal(t, 1, res.Depth)
}

func TestSearchReportsProgressPerDepth(t *testing.T) {
	st := tiaoqi.NewInitialState()
	for i := 0; i < 10; i++ {
		st.ApplyMove(st.LegalMoves()[0])
	}

	var depths []int
	e := NewEngine(1 << 14)
	res, err := e.SearchBestMove(st, SearchConfig{
		MaxDepth:  3,
		TimeLimit: 30 * time.Second,
		Progress:  func(d DepthResult) { depths = append(depths, d.Depth) },
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, depths)
	require.Equal(t, 3, res.Depth)
	require.False(t, res.BestMove.IsNull())
	require.Greater(t, res.Nodes, int64(0))
	require.Greater(t, e.TableLen(), 0)

	// 主变必须是从根局面起合法的着法序列
	require.NotEmpty(t, res.PV)
	walk := st.Clone()
	for i, mv := range res.PV {
		legal := false
		for _, m := range walk.LegalMoves() {
			if m == mv {
				legal = true
				break
			}
		}
		require.True(t, legal, "pv move %d (%+v) is illegal", i, mv)
		walk.ApplyMove(mv)
	}
}
