// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/midgardgame/character-api/internal/repositories/character Repository

import (
	"context"

	"github.com/midgardgame/character-api/internal/entities"
)

// Repository defines the interface for character persistence.
// The store enforces uniqueness of both character_name and
// display_character_name; Create surfaces violations as AlreadyExists, which
// makes the database constraint the authoritative uniqueness check.
type Repository interface {
	// Create persists a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the name or display name is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by its lowercased name
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update rewrites an existing character row
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character by its lowercased name
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves all characters owned by a player account
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	CharacterName string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	CharacterName string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing characters by owner
type ListByOwnerInput struct {
	OwnerUsername string
}

// ListByOwnerOutput defines the output for listing characters by owner
type ListByOwnerOutput struct {
	Characters []*entities.Character
}
