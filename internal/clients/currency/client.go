// Package currency is the client for the currency service
package currency

//go:generate mockgen -destination=mock/mock_client.go -package=currencymock github.com/midgardgame/character-api/internal/clients/currency Client

import (
	"context"
	"time"

	"github.com/midgardgame/character-api/internal/clients/rest"
)

// Type identifies a currency.
type Type string

// Currencies
const (
	TypeGold Type = "GOLD"
)

// Client defines the currency service operations the workflow engine needs.
type Client interface {
	// Add grants an amount of currency to a character
	Add(ctx context.Context, characterName string, currency Type, amount int) error
}

type httpClient struct {
	caller *rest.Caller
}

// Config contains configuration for the currency HTTP client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTP creates a currency client talking to the service at cfg.BaseURL
func NewHTTP(cfg *Config) (Client, error) {
	caller, err := rest.NewCaller(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &httpClient{caller: caller}, nil
}

type addCurrencyParameter struct {
	CharacterName string `json:"characterName"`
	CurrencyType  Type   `json:"currencyType"`
	Amount        int    `json:"amount"`
}

func (c *httpClient) Add(ctx context.Context, characterName string, currency Type, amount int) error {
	return c.caller.Post(ctx, "/v1/currency/add-currency", addCurrencyParameter{
		CharacterName: characterName,
		CurrencyType:  currency,
		Amount:        amount,
	}, nil)
}
