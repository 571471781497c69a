// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/midgardgame/character-api/internal/services/character Service

import (
	"context"

	"github.com/midgardgame/character-api/internal/entities"
)

// Service defines the interface for character operations
type Service interface {
	// Creation
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	CreateDebugCharacter(ctx context.Context, input *CreateDebugCharacterInput) (*CreateDebugCharacterOutput, error)
	IsNameAvailable(ctx context.Context, input *IsNameAvailableInput) (*IsNameAvailableOutput, error)

	// Lifecycle
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error)

	// Reads
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	GetOwnedCharacter(ctx context.Context, input *GetOwnedCharacterInput) (*GetOwnedCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	GetSelectedCharacter(ctx context.Context, input *GetSelectedCharacterInput) (*GetSelectedCharacterOutput, error)

	// Equipment
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	SaveEquippedItems(ctx context.Context, input *SaveEquippedItemsInput) (*SaveEquippedItemsOutput, error)
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	OwnerUsername        string
	DisplayCharacterName string
	StartingClass        string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// CreateDebugCharacterInput defines the request for creating a debug character.
// If the character already exists it is reassigned to OwnerUsername instead.
type CreateDebugCharacterInput struct {
	OwnerUsername        string
	DisplayCharacterName string
}

// CreateDebugCharacterOutput defines the response for creating a debug character
type CreateDebugCharacterOutput struct {
	Character *entities.Character
}

// IsNameAvailableInput defines the request for a name availability check
type IsNameAvailableInput struct {
	CharacterName string
}

// IsNameAvailableOutput defines the response for a name availability check.
// The check is advisory; creation re-checks and the store constraint decides.
type IsNameAvailableOutput struct {
	Available bool
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	OwnerUsername string
	CharacterName string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// SelectCharacterInput defines the request for selecting a character
type SelectCharacterInput struct {
	OwnerUsername string
	CharacterName string
}

// SelectCharacterOutput defines the response for selecting a character
type SelectCharacterOutput struct{}

// GetCharacterInput defines the request for getting a character without
// owner validation
type GetCharacterInput struct {
	CharacterName string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// GetOwnedCharacterInput defines the request for getting a character with
// owner validation
type GetOwnedCharacterInput struct {
	OwnerUsername string
	CharacterName string
}

// GetOwnedCharacterOutput defines the response for getting an owned character
type GetOwnedCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing an owner's characters
type ListCharactersInput struct {
	OwnerUsername string
}

// ListCharactersOutput defines the response for listing an owner's characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// GetSelectedCharacterInput defines the request for reading an owner's
// selected character
type GetSelectedCharacterInput struct {
	OwnerUsername string
}

// GetSelectedCharacterOutput defines the response for reading an owner's
// selected character
type GetSelectedCharacterOutput struct {
	Character *entities.Character
}

// EquipItemInput defines the request for equipping a single item
type EquipItemInput struct {
	CharacterName string
	Slot          string
	Item          string
	Metadata      string
}

// EquipItemOutput defines the response for equipping a single item
type EquipItemOutput struct {
	Character *entities.Character
}

// UnequipItemInput defines the request for unequipping a slot
type UnequipItemInput struct {
	CharacterName string
	Slot          string
}

// UnequipItemOutput defines the response for unequipping a slot
type UnequipItemOutput struct {
	Character *entities.Character
}

// EquippedItem is one slot assignment inside a batch equipment save
type EquippedItem struct {
	Slot     string
	Item     string
	Metadata string
}

// SaveEquippedItemsInput defines the request for a batch equipment save.
// The whole batch is validated against the character's wardrobe before any
// slot is mutated; one bad entry rejects everything.
type SaveEquippedItemsInput struct {
	CharacterName string
	Items         []EquippedItem
}

// SaveEquippedItemsOutput defines the response for a batch equipment save
type SaveEquippedItemsOutput struct {
	Character *entities.Character
}
