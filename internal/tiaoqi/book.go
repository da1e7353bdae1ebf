package tiaoqi

import (
	"errors"
	"sync"
)

// BookRounds 开局库覆盖的回合数；之前的着法直接查表不搜索
const BookRounds = 4

// ErrBookMiss：理论可达的开局局面不在库里，属于数据不完整，
// 调用方按致命错误处理，不做兜底。
var ErrBookMiss = errors.New("opening book: position not found")

var (
	bookOnce sync.Once
	openings [2]map[Mask]Move
)

// 绿方前 4 手的定式：先顶一步，随后连续借子起跳。
// 库按“己方占位掩码”寻址，开局阶段己方走子不受对方影响，
// 每一方可达的早期局面恰好是这一条线。红方取中心对称。
var greenOpeningLine = []Move{
	{Src: indexOf(3, 0), Dst: indexOf(4, 0)},
	{Src: indexOf(1, 1), Dst: indexOf(3, 1)},
	{Src: indexOf(2, 0), Dst: indexOf(2, 2)},
	{Src: indexOf(1, 2), Dst: indexOf(3, 2)},
}

func buildBook() {
	openings[Green] = lineToBook(initialGreen, greenOpeningLine, false)
	openings[Red] = lineToBook(initialRed, greenOpeningLine, true)
}

func lineToBook(start Mask, line []Move, mirror bool) map[Mask]Move {
	book := make(map[Mask]Move, len(line))
	mask := start
	for _, mv := range line {
		if mirror {
			mv = Move{Src: NumCells - 1 - mv.Src, Dst: NumCells - 1 - mv.Dst}
		}
		book[mask] = mv
		mask.Clear(mv.Src)
		mask.Set(mv.Dst)
	}
	return book
}

// BookMove 按（走子方, 己方占位掩码）查开局库
func BookMove(side Side, own Mask) (Move, error) {
	bookOnce.Do(buildBook)
	mv, ok := openings[side][own]
	if !ok {
		return NullMove, ErrBookMiss
	}
	return mv, nil
}
