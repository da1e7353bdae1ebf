package tiaoqi

import "testing"

func TestDistanceMirrorSymmetry(t *testing.T) {
	for sq := 0; sq < NumCells; sq++ {
		mirror := NumCells - 1 - sq
		if distances[sq]+distances[mirror] != maxDistance {
			t.Fatalf("distance mirror broken at %d: %d + %d != %d",
				sq, distances[sq], distances[mirror], maxDistance)
		}
	}
}

func TestAdjacencySymmetric(t *testing.T) {
	for sq := 0; sq < NumCells; sq++ {
		n := adjMasks[sq].Count()
		if n < 2 || n > 4 {
			t.Fatalf("cell %d has %d neighbors", sq, n)
		}
		for x := adjMasks[sq]; !x.IsZero(); {
			nb := x.HighestBit()
			x.Clear(nb)
			if !adjMasks[nb].Test(sq) {
				t.Fatalf("adjacency not symmetric: %d -> %d", sq, nb)
			}
		}
	}
}

func TestJumpTableCoversAllNeighborPatterns(t *testing.T) {
	for sq := 0; sq < NumCells; sq++ {
		want := 1 << adjMasks[sq].Count()
		if len(jumpMasks[sq]) != want {
			t.Fatalf("cell %d: %d patterns, want %d", sq, len(jumpMasks[sq]), want)
		}
		// 每个占位的相邻格，落点必须是同方向紧挨的下一格
		for pattern, landings := range jumpMasks[sq] {
			var recomputed Mask
			for p := pattern; !p.IsZero(); {
				n := p.HighestBit()
				p.Clear(n)
				lr := 2*rowOf(n) - rowOf(sq)
				lc := 2*colOf(n) - colOf(sq)
				if onBoard(lr, lc) {
					recomputed.Set(indexOf(lr, lc))
				}
			}
			if recomputed != landings {
				t.Fatalf("cell %d pattern %+v: landings mismatch", sq, pattern)
			}
		}
	}
}

func TestInitialMasks(t *testing.T) {
	if initialRed.Count() != NumPieces || initialGreen.Count() != NumPieces {
		t.Fatalf("piece counts: red=%d green=%d", initialRed.Count(), initialGreen.Count())
	}
	if !initialRed.And(initialGreen).IsZero() {
		t.Fatal("initial masks overlap")
	}
	for x := initialGreen; !x.IsZero(); {
		sq := x.HighestBit()
		x.Clear(sq)
		if distances[sq] > goalDistance {
			t.Fatalf("green start cell %d outside corner", sq)
		}
	}
	for x := initialRed; !x.IsZero(); {
		sq := x.HighestBit()
		x.Clear(sq)
		if distances[sq] < maxDistance-goalDistance {
			t.Fatalf("red start cell %d outside corner", sq)
		}
	}
	if initialRed != initialGreen.Mirror() {
		t.Fatal("start corners are not mirrored")
	}
}

func TestMaskBitOps(t *testing.T) {
	var m Mask
	for _, sq := range []int{0, 1, 63, 64, 79, 80} {
		m.Set(sq)
		if !m.Test(sq) {
			t.Fatalf("bit %d not set", sq)
		}
	}
	if m.Count() != 6 {
		t.Fatalf("count = %d", m.Count())
	}
	if m.HighestBit() != 80 {
		t.Fatalf("highest = %d", m.HighestBit())
	}
	m.Clear(80)
	m.Clear(0)
	if m.Count() != 4 || m.HighestBit() != 79 {
		t.Fatalf("after clear: count=%d highest=%d", m.Count(), m.HighestBit())
	}
	if (Mask{}).HighestBit() != -1 {
		t.Fatal("empty mask highest bit")
	}
}
