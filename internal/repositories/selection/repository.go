// Package selection provides the per-owner selected-character pointer
package selection

//go:generate mockgen -destination=mock/mock_repository.go -package=selectionmock github.com/midgardgame/character-api/internal/repositories/selection Repository

import (
	"context"
)

// Repository stores which character each player account currently has
// selected. The pointer is re-derivable from the character store, so this
// data is allowed to live in a volatile store.
type Repository interface {
	// GetSelection returns the selected character name for an owner
	// Returns errors.NotFound if the owner has no selection
	GetSelection(ctx context.Context, input GetSelectionInput) (*GetSelectionOutput, error)

	// SetSelection points an owner's selection at a character name
	SetSelection(ctx context.Context, input SetSelectionInput) (*SetSelectionOutput, error)

	// ClearSelection removes an owner's selection entirely
	ClearSelection(ctx context.Context, input ClearSelectionInput) (*ClearSelectionOutput, error)
}

// GetSelectionInput defines the input for reading a selection
type GetSelectionInput struct {
	OwnerUsername string
}

// GetSelectionOutput defines the output for reading a selection
type GetSelectionOutput struct {
	CharacterName string
}

// SetSelectionInput defines the input for writing a selection
type SetSelectionInput struct {
	OwnerUsername string
	CharacterName string
}

// SetSelectionOutput defines the output for writing a selection
type SetSelectionOutput struct{}

// ClearSelectionInput defines the input for clearing a selection
type ClearSelectionInput struct {
	OwnerUsername string
}

// ClearSelectionOutput defines the output for clearing a selection
type ClearSelectionOutput struct{}
