package game

import (
	"time"

	"tiaoqi/internal/tiaoqi"
)

type Session struct {
	ID        string
	State     *tiaoqi.GameState
	CreatedAt time.Time
	UpdatedAt time.Time
}
