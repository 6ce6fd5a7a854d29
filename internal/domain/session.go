package domain

// Stage is a step of the drawing session state machine
type Stage string

const (
	StageStart               Stage = "START"
	StageRoundIntro          Stage = "ROUND_INTRO"
	StageDrawing             Stage = "DRAWING"
	StageIntermediateResults Stage = "INTERMEDIATE_RESULTS"
	StageFinalBlessing       Stage = "FINAL_BLESSING"
	StageResults             Stage = "RESULTS"
)

// Valid reports whether s is one of the known stages
func (s Stage) Valid() bool {
	switch s {
	case StageStart, StageRoundIntro, StageDrawing, StageIntermediateResults, StageFinalBlessing, StageResults:
		return true
	}
	return false
}

// DrawingRelated reports whether the stage requires a valid current prize
func (s Stage) DrawingRelated() bool {
	switch s {
	case StageRoundIntro, StageDrawing, StageIntermediateResults:
		return true
	}
	return false
}

// SessionState is the persisted record of a drawing in progress.
// Field names match the saved-session layout and must round-trip exactly.
type SessionState struct {
	Stage             Stage    `json:"stage"`
	RemainingMembers  []string `json:"remainingMembers"`
	Winners           []Winner `json:"winners"`
	CurrentPrizeIndex int      `json:"currentPrizeIndex"`
}

// Clone returns a deep copy so callers never share slices with the owner
func (s SessionState) Clone() SessionState {
	out := SessionState{
		Stage:             s.Stage,
		CurrentPrizeIndex: s.CurrentPrizeIndex,
		RemainingMembers:  make([]string, len(s.RemainingMembers)),
		Winners:           make([]Winner, len(s.Winners)),
	}
	copy(out.RemainingMembers, s.RemainingMembers)
	copy(out.Winners, s.Winners)
	return out
}
