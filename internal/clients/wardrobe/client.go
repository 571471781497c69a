// Package wardrobe is the client for the wardrobe service, which records
// which cosmetic and equipment items a character owns.
package wardrobe

//go:generate mockgen -destination=mock/mock_client.go -package=wardrobemock github.com/midgardgame/character-api/internal/clients/wardrobe Client

import (
	"context"
	"time"

	"github.com/midgardgame/character-api/internal/clients/rest"
)

// Client defines the wardrobe service operations the workflow engine needs.
// AddItem is idempotent on the remote side; granting an item twice is safe.
type Client interface {
	// AddItem grants an item to a character's wardrobe
	AddItem(ctx context.Context, characterName, item string) error

	// GetItems returns every item in a character's wardrobe
	GetItems(ctx context.Context, characterName string) ([]string, error)
}

type httpClient struct {
	caller *rest.Caller
}

// Config contains configuration for the wardrobe HTTP client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTP creates a wardrobe client talking to the service at cfg.BaseURL
func NewHTTP(cfg *Config) (Client, error) {
	caller, err := rest.NewCaller(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &httpClient{caller: caller}, nil
}

type itemParameter struct {
	CharacterName string `json:"characterName"`
	ItemName      string `json:"itemName"`
}

type characterNameParameter struct {
	CharacterName string `json:"characterName"`
}

func (c *httpClient) AddItem(ctx context.Context, characterName, item string) error {
	return c.caller.Post(ctx, "/v1/wardrobe/add-wardrobe-item", itemParameter{
		CharacterName: characterName,
		ItemName:      item,
	}, nil)
}

func (c *httpClient) GetItems(ctx context.Context, characterName string) ([]string, error) {
	var items []string
	err := c.caller.Post(ctx, "/v1/wardrobe/get-wardrobe-items", characterNameParameter{
		CharacterName: characterName,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}
