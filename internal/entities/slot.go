package entities

import (
	"strings"

	"github.com/midgardgame/character-api/internal/errors"
)

// Slot identifies one of the eight equipment attachment points on a character.
type Slot string

// Equipment slots
const (
	SlotMainhand Slot = "MAINHAND"
	SlotOffhand  Slot = "OFFHAND"
	SlotHead     Slot = "HEAD"
	SlotBeard    Slot = "BEARD"
	SlotChest    Slot = "CHEST"
	SlotHands    Slot = "HANDS"
	SlotLegs     Slot = "LEGS"
	SlotFeet     Slot = "FEET"
)

// AllSlots lists every equipment slot in a stable order.
var AllSlots = []Slot{
	SlotMainhand,
	SlotOffhand,
	SlotHead,
	SlotBeard,
	SlotChest,
	SlotHands,
	SlotLegs,
	SlotFeet,
}

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// ParseSlot converts a slot name into a Slot.
// Returns errors.InvalidArgument for unrecognized names.
func ParseSlot(name string) (Slot, error) {
	slot := Slot(strings.ToUpper(strings.TrimSpace(name)))
	switch slot {
	case SlotMainhand, SlotOffhand, SlotHead, SlotBeard, SlotChest, SlotHands, SlotLegs, SlotFeet:
		return slot, nil
	default:
		return "", errors.InvalidArgumentf("unknown equipment slot %q", name)
	}
}
