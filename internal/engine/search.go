package engine

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"tiaoqi/internal/tiaoqi"
)

const (
	scoreInf = math.MaxInt32

	// 超过这个分就认定找到必胜着法，停止加深
	winThreshold = tiaoqi.WinScore - 1

	maxSearchDepth = 100
)

// 搜索配置
type SearchConfig struct {
	MaxDepth  int                // 最大迭代深度，<=0 用默认
	TimeLimit time.Duration      // 墙钟预算，<=0 用默认 5s
	Progress  func(DepthResult)  // 每完成一层回调一次，可为 nil
}

// 每层迭代完成后的快照，喂给诊断/前端
type DepthResult struct {
	Depth int         `json:"depth"`
	Score int         `json:"score"`
	Move  tiaoqi.Move `json:"move"`
	Nodes int64       `json:"nodes"`
}

// 搜索结果。超时用数据表达而不是异常：
// TimedOut 为 true 表示最深一层没跑完，BestMove 仍是当前最优。
type SearchResult struct {
	BestMove tiaoqi.Move
	Score    int
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
	PV       []tiaoqi.Move
	TimedOut bool
	FromBook bool
}

// 主变线：上一层迭代留下的着法序列，下一层按 ply 依次顶到队首
type movePath struct {
	moves []tiaoqi.Move
	index int
}

// SearchBestMove 在给定时间预算内找最佳着法。
// 前几回合走开局库；库缺失理论可达局面属于数据缺陷，原样抛给调用方。
// 之后迭代加深驱动 MTD(f)，直到必胜/超时/到达深度上限。
func (e *Engine) SearchBestMove(g *tiaoqi.GameState, cfg SearchConfig) (SearchResult, error) {
	start := time.Now()

	if g.Round() <= tiaoqi.BookRounds {
		mv, err := tiaoqi.BookMove(g.Turn(), g.Occupied(g.Turn()))
		if err != nil {
			return SearchResult{BestMove: tiaoqi.NullMove}, err
		}
		return SearchResult{
			BestMove: mv,
			FromBook: true,
			TimeUsed: time.Since(start),
		}, nil
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 || maxDepth > maxSearchDepth {
		maxDepth = maxSearchDepth
	}
	limit := cfg.TimeLimit
	if limit <= 0 {
		limit = 5 * time.Second
	}
	deadline := start.Add(limit)

	e.nodes = 0
	work := g.Clone()

	depth := 1
	eval, bestEval := -scoreInf, -scoreInf
	move, bestMove := tiaoqi.NullMove, tiaoqi.NullMove
	timedOut := false
	var pline movePath

	for depth <= maxDepth {
		bestEval = eval
		bestMove = move
		eval = e.mtdf(work, depth, eval, &pline, deadline)

		h := work.Hash()
		if ent, ok := e.probeTT(h); ok {
			move = ent.BestMove
		}
		log.Info().Msgf("complete search depth: %d, score: %d, move: %d %d", depth, eval, move.Src, move.Dst)
		if cfg.Progress != nil {
			cfg.Progress(DepthResult{Depth: depth, Score: eval, Move: move, Nodes: e.nodes})
		}

		// 沿置换表从根重放 bestMove 链，重建主变给下一层排序用
		pline.moves = pline.moves[:0]
		pline.index = 0
		temp := work.Clone()
		for len(pline.moves) < depth {
			ent, ok := e.probeTT(h)
			if !ok || ent.BestMove.IsNull() {
				break
			}
			pline.moves = append(pline.moves, ent.BestMove)
			temp.ApplyMove(ent.BestMove)
			h = temp.Hash()
		}

		if eval > winThreshold {
			// 找到胜利着法
			break
		}
		if time.Now().After(deadline) {
			timedOut = true
			break
		}
		depth++
	}

	if depth > maxDepth {
		depth = maxDepth
	}

	// 最深一层即便没跑完，结果更好就用它，防止被截断的迭代倒退
	if eval > bestEval {
		bestEval = eval
		bestMove = move
	}
	log.Info().Msgf("final eval: %d", bestEval)

	pv := make([]tiaoqi.Move, len(pline.moves))
	copy(pv, pline.moves)
	return SearchResult{
		BestMove: bestMove,
		Score:    bestEval,
		Depth:    depth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
		PV:       pv,
		TimedOut: timedOut,
	}, nil
}

// mtdf 用一串零窗口探测逼近真值：
// 上一轮的 score 当猜测，beta 取猜测或 lower+1，
// 每次探测收紧上下界，相遇即收敛。探测共享置换表，所以一轮比一轮便宜。
func (e *Engine) mtdf(g *tiaoqi.GameState, depth, guess int, pline *movePath, deadline time.Time) int {
	upperbound := scoreInf
	lowerbound := -scoreInf
	score := guess
	for lowerbound < upperbound {
		beta := score
		if score == lowerbound {
			beta = score + 1
		}
		pline.index = 0
		score = e.alphaBeta(g, depth, beta-1, beta, pline, deadline)
		if score < beta {
			upperbound = score
		} else {
			lowerbound = score
		}
	}
	return score
}

// alphaBeta 负极大搜索：返回值永远站在“即将走子的一方”立场。
// 结点流程：查表收窗 -> 叶子返回静态评估 -> 主变着法顶到队首 ->
// 逐着法原地走/回溯递归 -> beta 截断 -> 按原始窗口归类存表。
func (e *Engine) alphaBeta(g *tiaoqi.GameState, depth, alpha, beta int, pline *movePath, deadline time.Time) int {
	e.nodes++

	hash := g.Hash()
	alphaOrig := alpha
	if ent, ok := e.probeTT(hash); ok && ent.Depth >= depth {
		switch ent.Flag {
		case ttExact:
			return ent.Value
		case ttLower:
			if ent.Value > alpha {
				alpha = ent.Value
			}
		case ttUpper:
			if ent.Value < beta {
				beta = ent.Value
			}
		}
		if alpha >= beta {
			return ent.Value
		}
	}

	// 叶子结点
	if g.IsGameOver() || depth == 0 {
		return g.Evaluate()
	}

	moves := g.LegalMoves()
	// 优先上一次搜索的最佳着法
	if pline.index != len(pline.moves) {
		moves = append([]tiaoqi.Move{pline.moves[pline.index]}, moves...)
		pline.index++
	}

	bestMove := tiaoqi.NullMove
	value := -scoreInf
	for _, mv := range moves {
		// 跳过向后退两格及以上的着法
		if retreatsTooFar(g.Turn(), mv) {
			continue
		}
		g.ApplyMove(mv)
		current := -e.alphaBeta(g, depth-1, -beta, -alpha, pline, deadline)
		g.UndoMove(mv)
		if current > value {
			value = current
			bestMove = mv
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			// 截断
			break
		}
		// 超时检测：放弃本结点剩余着法，已探过的兄弟结果照常可用
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}

	flag := ttExact
	if value <= alphaOrig {
		flag = ttUpper
	} else if value >= beta {
		flag = ttLower
	}
	e.storeTT(ttEntry{Key: hash, Value: value, Depth: depth, Flag: flag, BestMove: bestMove})
	return alpha
}

// 相对前进方向后退两格及以上的着法启发式劣势，整支剪掉
func retreatsTooFar(side tiaoqi.Side, mv tiaoqi.Move) bool {
	delta := tiaoqi.Distance(mv.Dst) - tiaoqi.Distance(mv.Src)
	if side == tiaoqi.Green {
		return delta <= -2
	}
	return delta >= 2
}
