package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "lottery_state_2026_v1", DefaultStorageKey)
	assert.Equal(t, "lottery_state_gala_v3", StorageKey("gala", 3))
}

func TestEncodeSession_Layout(t *testing.T) {
	data, err := EncodeSession(domain.SessionState{
		Stage:             domain.StageDrawing,
		RemainingMembers:  []string{"B"},
		Winners:           []domain.Winner{{Name: "A", PrizeName: "Mug", PrizeID: 3}},
		CurrentPrizeIndex: 1,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"stage": "DRAWING",
		"remainingMembers": ["B"],
		"winners": [{"name": "A", "prizeName": "Mug", "prizeId": 3}],
		"currentPrizeIndex": 1
	}`, string(data))

	data, err = EncodeSession(domain.SessionState{Stage: domain.StageStart})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stage":"START","remainingMembers":[],"winners":[],"currentPrizeIndex":0}`, string(data))
}

func TestDecodeSession(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		isNil bool
	}{
		{"valid", `{"stage":"ROUND_INTRO","remainingMembers":["A"],"winners":[],"currentPrizeIndex":0}`, false},
		{"missing slices", `{"stage":"ROUND_INTRO","currentPrizeIndex":0}`, false},
		{"truncated", `{"stage":"ROUND_`, true},
		{"not an object", `[1,2,3]`, true},
		{"wrong field type", `{"stage":"DRAWING","remainingMembers":"A"}`, true},
		{"no stage", `{"remainingMembers":[]}`, true},
		{"empty", ``, true},
		{"null", `null`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeSession([]byte(tt.data))
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.NotNil(t, got.RemainingMembers)
			assert.NotNil(t, got.Winners)
		})
	}
}
