package sse

import "github.com/osse101/LuckyDraw_Go/internal/domain"

// RevealFramePayload is one animation frame: a random sample of the remaining
// pool. It never decides anything.
type RevealFramePayload struct {
	PrizeID     int      `json:"prize_id"`
	PrizeName   string   `json:"prize_name"`
	Names       []string `json:"names"`
	ElapsedMs   int64    `json:"elapsed_ms"`
	RemainingMs int64    `json:"remaining_ms"`
}

// StageChangedPayload tells the UI which screen to render
type StageChangedPayload struct {
	From       domain.Stage `json:"from"`
	To         domain.Stage `json:"to"`
	PrizeIndex int          `json:"prize_index"`
}

// RoundCompletedPayload announces the committed winners of a prize
type RoundCompletedPayload struct {
	PrizeID    int      `json:"prize_id"`
	PrizeName  string   `json:"prize_name"`
	PrizeIndex int      `json:"prize_index"`
	Winners    []string `json:"winners"`
	Remaining  int      `json:"remaining"`
	IsLast     bool     `json:"is_last"`
}

// SessionPayload summarizes the session after start, resume or restart
type SessionPayload struct {
	Stage      domain.Stage `json:"stage"`
	PrizeIndex int          `json:"prize_index"`
	Remaining  int          `json:"remaining"`
	Winners    int          `json:"winners"`
}
