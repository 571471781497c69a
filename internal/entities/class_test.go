package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midgardgame/character-api/internal/entities"
	"github.com/midgardgame/character-api/internal/errors"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		input string
		want  entities.Class
	}{
		{"WARRIOR", entities.ClassWarrior},
		{"warrior", entities.ClassWarrior},
		{"Shaman", entities.ClassShaman},
		{"RANGER", entities.ClassRanger},
		{"debug", entities.ClassDebug},
	}

	for _, tt := range tests {
		got, err := entities.ParseClass(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseClass_Unknown(t *testing.T) {
	_, err := entities.ParseClass("NECROMANCER")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
