package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midgardgame/character-api/internal/entities"
	"github.com/midgardgame/character-api/internal/errors"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input string
		want  entities.Slot
	}{
		{"MAINHAND", entities.SlotMainhand},
		{"mainhand", entities.SlotMainhand},
		{" head ", entities.SlotHead},
		{"OffHand", entities.SlotOffhand},
		{"BEARD", entities.SlotBeard},
		{"chest", entities.SlotChest},
		{"HANDS", entities.SlotHands},
		{"legs", entities.SlotLegs},
		{"FEET", entities.SlotFeet},
	}

	for _, tt := range tests {
		got, err := entities.ParseSlot(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseSlot_Unknown(t *testing.T) {
	for _, input := range []string{"", "TAIL", "main hand"} {
		_, err := entities.ParseSlot(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.IsInvalidArgument(err))
	}
}

func TestAllSlots_CoversEverySlot(t *testing.T) {
	require.Len(t, entities.AllSlots, 8)

	seen := make(map[entities.Slot]struct{})
	for _, slot := range entities.AllSlots {
		seen[slot] = struct{}{}
	}
	require.Len(t, seen, 8, "slots must be distinct")
}
