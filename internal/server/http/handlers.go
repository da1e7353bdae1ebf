package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"tiaoqi/internal/config"
	"tiaoqi/internal/engine"
	"tiaoqi/internal/server/game"
	"tiaoqi/internal/tiaoqi"
)

// Handler 实现 http.Handler，承接 /api/* 路由
type Handler struct {
	mgr    *game.Manager
	engine *engine.Engine
	hub    *LiveHub
	cfg    config.Config
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{
		mgr:    game.NewManager(),
		engine: engine.NewEngine(cfg.TTCapacity),
		hub:    NewLiveHub(),
		cfg:    cfg,
	}
}

func (h *Handler) Engine() *engine.Engine { return h.engine }
func (h *Handler) Hub() *LiveHub          { return h.hub }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/play":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlay(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/ai_move":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleAiMove(w, r)

	case "/api/live":
		h.hub.ServeWS(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s := h.mgr.NewGame()
	// 新对局不是旧局面的延续，旧表项只会误导，清掉
	h.engine.ResetTable()

	resp := NewGameResponse{
		GameID:     s.ID,
		Position:   s.State.Encode(),
		ToMove:     sideToInt(s.State.Turn()),
		Round:      s.State.Round(),
		LegalMoves: movesToDTO(s.State.LegalMoves()),
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, err := h.mgr.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	st := s.State
	legal := st.LegalMoves()

	// 确认这步是不是合法招之一
	found := false
	mv := dtoToMove(req.Move)
	for _, lm := range legal {
		if lm == mv {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}

	next := st.Clone()
	next.ApplyMove(mv)
	if err := h.mgr.Update(req.GameID, next); err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	status := "ongoing"
	if next.IsGameOver() {
		status = "finished"
	}
	resp := PlayResponse{
		Position:   next.Encode(),
		ToMove:     sideToInt(next.Turn()),
		Round:      next.Round(),
		LegalMoves: movesToDTO(next.LegalMoves()),
		Status:     status,
	}
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, err := h.mgr.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	st := s.State
	status := "ongoing"
	if st.IsGameOver() {
		status = "finished"
	}
	resp := StateResponse{
		Position:   st.Encode(),
		ToMove:     sideToInt(st.Turn()),
		Round:      st.Round(),
		LegalMoves: movesToDTO(st.LegalMoves()),
		Status:     status,
	}
	writeJSON(w, resp)
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Position == "" {
		http.Error(w, "missing position", http.StatusBadRequest)
		return
	}

	// 文本局面刻意宽松解析，坏回合数会退回默认值
	st := tiaoqi.DecodeState(req.Position)
	// 走子方以请求参数为准
	st.SetTurn(intToSide(req.ToMove))

	limit := h.cfg.SearchTime()
	if req.TimeMs > 0 {
		limit = time.Duration(req.TimeMs) * time.Millisecond
	}
	maxDepth := h.cfg.MaxDepth
	if req.MaxDepth > 0 {
		maxDepth = req.MaxDepth
	}

	cfg := engine.SearchConfig{
		MaxDepth:  maxDepth,
		TimeLimit: limit,
		Progress: func(d engine.DepthResult) {
			h.hub.Publish(LivePayload{
				Event: "depth",
				Depth: d.Depth,
				Score: d.Score,
				Move:  moveToDTO(d.Move),
				Nodes: d.Nodes,
			})
		},
	}

	res, err := h.engine.SearchBestMove(st, cfg)
	if err != nil {
		if errors.Is(err, tiaoqi.ErrBookMiss) {
			// 开局库缺口是数据缺陷，不兜底
			log.Error().Msgf("opening book miss: round=%d side=%d", st.Round(), st.Turn())
			http.Error(w, "opening book miss", http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := "ok"
	if res.FromBook {
		status = "book"
	} else if res.TimedOut {
		status = "timeout_partial"
	}
	resp := AiMoveResponse{
		BestMove: moveToDTO(res.BestMove),
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
		PV:       movesToDTO(res.PV),
		Position: st.Encode(),
		ToMove:   sideToInt(st.Turn()),
		Status:   status,
		TimedOut: res.TimedOut,
		FromBook: res.FromBook,
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Msgf("writeJSON error: %v", err)
	}
}
