package httpserver

import "tiaoqi/internal/tiaoqi"

// 前端用的着法结构
type MoveDTO struct {
	Src int `json:"src"`
	Dst int `json:"dst"`
}

func moveToDTO(m tiaoqi.Move) MoveDTO  { return MoveDTO{Src: m.Src, Dst: m.Dst} }
func dtoToMove(m MoveDTO) tiaoqi.Move  { return tiaoqi.Move{Src: m.Src, Dst: m.Dst} }

func movesToDTO(ms []tiaoqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func sideToInt(s tiaoqi.Side) int {
	switch s {
	case tiaoqi.Red:
		return 0
	case tiaoqi.Green:
		return 1
	default:
		return -1
	}
}

func intToSide(v int) tiaoqi.Side {
	if v == 1 {
		return tiaoqi.Green
	}
	return tiaoqi.Red
}

type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"` // 0=红, 1=绿
	Round      int       `json:"round"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type PlayResponse struct {
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	Round      int       `json:"round"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"` // "ongoing" / "finished"
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	Round      int       `json:"round"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
}

// AiMoveRequest 请求引擎为当前局面思考一步（只思考不落子）
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"` // 前端把 Encode() 的串传回来
	ToMove   int    `json:"to_move"`
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"`
}

type AiMoveResponse struct {
	BestMove MoveDTO   `json:"best_move"`
	Score    int       `json:"score"`
	Depth    int       `json:"depth"`
	Nodes    int64     `json:"nodes"`
	TimeMs   int64     `json:"time_ms"`
	PV       []MoveDTO `json:"pv"`
	Position string    `json:"position"` // 仍是原局面
	ToMove   int       `json:"to_move"`
	Status   string    `json:"status"` // "ok" / "book" / "timeout_partial" / "book_miss"
	TimedOut bool      `json:"timed_out"`
	FromBook bool      `json:"from_book"`
}
