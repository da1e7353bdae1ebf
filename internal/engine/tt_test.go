package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tiaoqi/internal/tiaoqi"
)

func TestTTStoreProbe(t *testing.T) {
	e := NewEngine(16)

	_, ok := e.probeTT(42)
	require.False(t, ok)

	ent := ttEntry{
		Key:      42,
		Value:    123,
		Depth:    5,
		Flag:     ttLower,
		BestMove: tiaoqi.Move{Src: 10, Dst: 19},
	}
	e.storeTT(ent)

	got, ok := e.probeTT(42)
	require.True(t, ok)
	require.Equal(t, ent, got)
}

func TestTTEvictsLeastRecentlyUsed(t *testing.T) {
	e := NewEngine(2)
	e.storeTT(ttEntry{Key: 1, Value: 1, Depth: 1})
	e.storeTT(ttEntry{Key: 2, Value: 2, Depth: 1})
	e.storeTT(ttEntry{Key: 3, Value: 3, Depth: 1})

	require.Equal(t, 2, e.TableLen())
	_, ok := e.probeTT(1)
	require.False(t, ok, "oldest entry should be evicted")
	_, ok = e.probeTT(3)
	require.True(t, ok)
}

func TestTTProbeRefreshesRecency(t *testing.T) {
	e := NewEngine(2)
	e.storeTT(ttEntry{Key: 1, Value: 1, Depth: 1})
	e.storeTT(ttEntry{Key: 2, Value: 2, Depth: 1})

	// 触碰 1 之后再写新条目，被淘汰的应是 2
	_, ok := e.probeTT(1)
	require.True(t, ok)
	e.storeTT(ttEntry{Key: 3, Value: 3, Depth: 1})

	_, ok = e.probeTT(1)
	require.True(t, ok)
	_, ok = e.probeTT(2)
	require.False(t, ok)
}

func TestResetTable(t *testing.T) {
	e := NewEngine(16)
	e.storeTT(ttEntry{Key: 7, Value: 7, Depth: 1})
	require.Equal(t, 1, e.TableLen())
	e.ResetTable()
	require.Equal(t, 0, e.TableLen())
}
