// Package recipe is the client for the recipe service
package recipe

//go:generate mockgen -destination=mock/mock_client.go -package=recipemock github.com/midgardgame/character-api/internal/clients/recipe Client

import (
	"context"
	"time"

	"github.com/midgardgame/character-api/internal/clients/rest"
)

// Client defines the recipe service operations the workflow engine needs.
type Client interface {
	// Add grants a crafting recipe to a character
	Add(ctx context.Context, characterName, recipeName string) error
}

type httpClient struct {
	caller *rest.Caller
}

// Config contains configuration for the recipe HTTP client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTP creates a recipe client talking to the service at cfg.BaseURL
func NewHTTP(cfg *Config) (Client, error) {
	caller, err := rest.NewCaller(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &httpClient{caller: caller}, nil
}

type addRecipeParameter struct {
	CharacterName string `json:"characterName"`
	RecipeName    string `json:"recipeName"`
}

func (c *httpClient) Add(ctx context.Context, characterName, recipeName string) error {
	return c.caller.Post(ctx, "/v1/recipe/add-recipe", addRecipeParameter{
		CharacterName: characterName,
		RecipeName:    recipeName,
	}, nil)
}
