package entities

import (
	"strings"

	"github.com/midgardgame/character-api/internal/errors"
)

// Class is a starting class a character can be created with.
type Class string

// Starting classes
const (
	ClassWarrior Class = "WARRIOR"
	ClassShaman  Class = "SHAMAN"
	ClassRanger  Class = "RANGER"
	ClassDebug   Class = "DEBUG"
)

// String returns the string representation of the class
func (c Class) String() string {
	return string(c)
}

// ParseClass converts a class name into a Class, case-insensitively.
// Returns errors.InvalidArgument for unrecognized names.
func ParseClass(name string) (Class, error) {
	class := Class(strings.ToUpper(strings.TrimSpace(name)))
	switch class {
	case ClassWarrior, ClassShaman, ClassRanger, ClassDebug:
		return class, nil
	default:
		return "", errors.InvalidArgumentf("unknown starting class %q", name)
	}
}
