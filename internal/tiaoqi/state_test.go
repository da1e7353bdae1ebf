package tiaoqi

import (
	"strconv"
	"strings"
	"testing"
)

// 拼一个局面串：红格 '1'，绿格 '2'，其余 '0'
func buildPosition(red, green []int, turn byte, round int) string {
	cells := []byte(strings.Repeat("0", NumCells))
	for _, sq := range red {
		cells[sq] = '1'
	}
	for _, sq := range green {
		cells[sq] = '2'
	}
	return string(cells) + " " + string(turn) + " " + strconv.Itoa(round)
}

func TestApplyUndoInverse(t *testing.T) {
	st := NewInitialState()
	st.Hash()
	for ply := 0; ply < 12; ply++ {
		moves := st.LegalMoves()
		encoded := st.Encode()
		hash := st.Hash()
		turn := st.Turn()
		round := st.Round()
		for _, mv := range moves {
			st.ApplyMove(mv)
			st.UndoMove(mv)
			if st.Encode() != encoded {
				t.Fatalf("ply %d move %+v: board not restored\n got %s\nwant %s", ply, mv, st.Encode(), encoded)
			}
			if st.Hash() != hash || st.Turn() != turn || st.Round() != round {
				t.Fatalf("ply %d move %+v: state not restored", ply, mv)
			}
		}
		st.ApplyMove(moves[ply%len(moves)])
	}
}

func TestRoundAdvancesWhenRedRegainsMove(t *testing.T) {
	st := NewInitialState()
	if st.Turn() != Red || st.Round() != 1 {
		t.Fatalf("initial turn=%d round=%d", st.Turn(), st.Round())
	}
	st.ApplyMove(st.LegalMoves()[0])
	if st.Round() != 1 {
		t.Fatalf("round advanced after red's move: %d", st.Round())
	}
	st.ApplyMove(st.LegalMoves()[0])
	if st.Round() != 2 {
		t.Fatalf("round did not advance after green's move: %d", st.Round())
	}
}

func TestMoveLegalityClosure(t *testing.T) {
	st := NewInitialState()
	for ply := 0; ply < 20; ply++ {
		for _, mv := range st.LegalMoves() {
			st.ApplyMove(mv)
			red, green := st.Occupied(Red), st.Occupied(Green)
			if !red.And(green).IsZero() {
				t.Fatalf("masks overlap after %+v", mv)
			}
			if red.Count() != NumPieces || green.Count() != NumPieces {
				t.Fatalf("piece count changed after %+v: red=%d green=%d", mv, red.Count(), green.Count())
			}
			st.UndoMove(mv)
		}
		moves := st.LegalMoves()
		st.ApplyMove(moves[(ply*3)%len(moves)])
	}
}

// 绿方全部到角后，评估返回固定胜负分，对手位置不再影响结果
func TestEvaluateTerminalMonotonic(t *testing.T) {
	greenHome := make([]int, 0, NumPieces)
	for sq := 0; sq < NumCells; sq++ {
		if distances[sq] >= maxDistance-goalDistance {
			greenHome = append(greenHome, sq)
		}
	}
	redA := []int{0, 1, 2, 3, 4, 9, 10, 11, 12, 13}
	redB := []int{18, 19, 20, 21, 22, 27, 28, 29, 30, 31}

	for _, red := range [][]int{redA, redB} {
		st := DecodeState(buildPosition(red, greenHome, 'g', 30))
		if !st.IsGameOver() {
			t.Fatal("won position not terminal")
		}
		if got := st.Evaluate(); got != WinScore {
			t.Fatalf("green to move in won position: evaluate=%d want=%d", got, WinScore)
		}
		st.SetTurn(Red)
		if got := st.Evaluate(); got != -WinScore {
			t.Fatalf("red to move in green-won position: evaluate=%d want=%d", got, -WinScore)
		}
	}
}

func TestEvaluateFavorsAdvancing(t *testing.T) {
	st := NewInitialState()
	before := st.Evaluate()
	// 红方最靠前的着法
	mv := st.LegalMoves()[0]
	st.ApplyMove(mv)
	// 换边后的评估取反回红方视角
	after := -st.Evaluate()
	if after <= before {
		t.Fatalf("advancing did not improve score: before=%d after=%d move=%+v", before, after, mv)
	}
}

func TestIsGameOverFalseMidGame(t *testing.T) {
	st := NewInitialState()
	if st.IsGameOver() {
		t.Fatal("initial position is terminal")
	}
	for i := 0; i < 10; i++ {
		st.ApplyMove(st.LegalMoves()[0])
		if st.IsGameOver() {
			t.Fatalf("terminal after %d plies", i+1)
		}
	}
}
