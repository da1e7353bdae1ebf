package tiaoqi

const (
	BoardSize = 9
	NumCells  = BoardSize * BoardSize // 81
	NumPieces = 10

	// 到 0 号角的曼哈顿距离范围 [0,16]
	maxDistance = BoardSize - 1 + BoardSize - 1

	// 红方目标：全部棋子距离 <= goalDistance（即绿方出发角）
	goalDistance = 3
)

func indexOf(row, col int) int { return row*BoardSize + col }
func rowOf(sq int) int         { return sq / BoardSize }
func colOf(sq int) int         { return sq % BoardSize }

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// 四个正交方向；步进与跳跃共用
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var (
	// adjMasks[sq]：sq 的相邻格掩码，单步走法的候选
	adjMasks [NumCells]Mask

	// jumpMasks[sq]：按“哪些相邻格有子”的子模式查落点掩码。
	// 跳跃越过相邻的一个子，落在同方向紧挨着的下一格；
	// 落点是否为空由走法生成时再用占位掩码过滤。
	jumpMasks [NumCells]map[Mask]Mask

	// distances[sq]：到 0 号角的曼哈顿距离，绿方前进即增大、红方前进即减小
	distances [NumCells]int

	// cellScores[sq]：位置分，离出发角越远越高；凸性让靠后的子更想动
	cellScores [NumCells]int

	initialRed, initialGreen Mask
)

func init() {
	buildTables()
}

func buildTables() {
	for sq := 0; sq < NumCells; sq++ {
		r, c := rowOf(sq), colOf(sq)
		distances[sq] = r + c
		cellScores[sq] = (r + c) * (r + c)

		var neighbors []int
		for _, d := range directions {
			nr, nc := r+d[0], c+d[1]
			if onBoard(nr, nc) {
				n := indexOf(nr, nc)
				adjMasks[sq].Set(n)
				neighbors = append(neighbors, n)
			}
		}

		// 枚举相邻占位的全部子模式，预生成落点
		jumpMasks[sq] = make(map[Mask]Mask, 1<<len(neighbors))
		for bitsSet := 0; bitsSet < 1<<len(neighbors); bitsSet++ {
			var pattern, landings Mask
			for i, n := range neighbors {
				if bitsSet>>i&1 == 0 {
					continue
				}
				pattern.Set(n)
				lr, lc := 2*rowOf(n)-r, 2*colOf(n)-c
				if onBoard(lr, lc) {
					landings.Set(indexOf(lr, lc))
				}
			}
			jumpMasks[sq][pattern] = landings
		}
	}

	// 绿方从 0 号角出发（距离 <= 3 的 10 格），红方镜像
	for sq := 0; sq < NumCells; sq++ {
		if distances[sq] <= goalDistance {
			initialGreen.Set(sq)
		}
		if distances[sq] >= maxDistance-goalDistance {
			initialRed.Set(sq)
		}
	}
}

// Distance 返回格子到 0 号角的距离；搜索层用它做后退裁剪
func Distance(sq int) int { return distances[sq] }
