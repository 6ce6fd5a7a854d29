package domain

// Prize describes one entry of the prize catalog
type Prize struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Count       int    `json:"count" validate:"required,gt=0"`
	Round       int    `json:"round" validate:"required,gt=0"`
	Group       string `json:"groupInRound" validate:"required,oneof=A B"`
}

// Winner records that a participant won a prize. It never changes once recorded.
type Winner struct {
	Name      string `json:"name"`
	PrizeName string `json:"prizeName"`
	PrizeID   int    `json:"prizeId"`
}

// PrizeResult groups the winners of one prize for the consolidated results view
type PrizeResult struct {
	Prize   Prize    `json:"prize"`
	Winners []string `json:"winners"`
	Total   int      `json:"total"`
}

// RoundInfo describes one round for the round-intro screen
type RoundInfo struct {
	Round  int     `json:"round"`
	Prizes []Prize `json:"prizes"`
}
