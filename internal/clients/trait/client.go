// Package trait is the client for the trait service, which tracks unlocked,
// purchased and skilled character traits.
package trait

//go:generate mockgen -destination=mock/mock_client.go -package=traitmock github.com/midgardgame/character-api/internal/clients/trait Client

import (
	"context"
	"time"

	"github.com/midgardgame/character-api/internal/clients/rest"
)

// Type identifies a character trait.
type Type string

// Known traits
const (
	TypeDodge                    Type = "DODGE"
	TypeShieldBreaker            Type = "SHIELD_BREAKER"
	TypeHemorrhage               Type = "HEMORRHAGE"
	TypeGungnirsWrath            Type = "GUNGNIRS_WRATH"
	TypeOnehandedSpecialization  Type = "ONEHANDED_SPECIALIZATION"
	TypeFrostBlast               Type = "FROST_BLAST"
	TypeSeidhring                Type = "SEIDHRING"
	TypePetrify                  Type = "PETRIFY"
	TypeFriggsIntervention       Type = "FRIGGS_INTERVENTION"
	TypeShieldBash               Type = "SHIELD_BASH"
	TypeRecover                  Type = "RECOVER"
	TypeTaunt                    Type = "TAUNT"
	TypeKick                     Type = "KICK"
)

// AllTypes lists every known trait, used to populate debug characters.
var AllTypes = []Type{
	TypeDodge,
	TypeShieldBreaker,
	TypeHemorrhage,
	TypeGungnirsWrath,
	TypeOnehandedSpecialization,
	TypeFrostBlast,
	TypeSeidhring,
	TypePetrify,
	TypeFriggsIntervention,
	TypeShieldBash,
	TypeRecover,
	TypeTaunt,
	TypeKick,
}

// Attribute is the character attribute a skilled trait draws from.
type Attribute string

// Attributes
const (
	AttributeAgility Attribute = "AGILITY"
)

// Client defines the trait service operations the workflow engine needs.
// All grant operations are idempotent on the remote side.
type Client interface {
	// Unlock makes a trait visible and learnable for a character
	Unlock(ctx context.Context, characterName string, trait Type) error

	// Purchase marks an unlocked trait as bought
	Purchase(ctx context.Context, characterName string, trait Type) error

	// Skill assigns a purchased trait to an attribute at the given point cost
	Skill(ctx context.Context, characterName string, trait Type, attribute Attribute, points int) error
}

type httpClient struct {
	caller *rest.Caller
}

// Config contains configuration for the trait HTTP client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTP creates a trait client talking to the service at cfg.BaseURL
func NewHTTP(cfg *Config) (Client, error) {
	caller, err := rest.NewCaller(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &httpClient{caller: caller}, nil
}

type traitParameter struct {
	CharacterName string `json:"characterName"`
	TraitType     Type   `json:"traitType"`
}

type skillTraitParameter struct {
	CharacterName string    `json:"characterName"`
	TraitType     Type      `json:"traitType"`
	AttributeType Attribute `json:"attributeType"`
	Points        int       `json:"points"`
}

func (c *httpClient) Unlock(ctx context.Context, characterName string, trait Type) error {
	return c.caller.Post(ctx, "/v1/trait/unlock-trait", traitParameter{
		CharacterName: characterName,
		TraitType:     trait,
	}, nil)
}

func (c *httpClient) Purchase(ctx context.Context, characterName string, trait Type) error {
	return c.caller.Post(ctx, "/v1/trait/purchase-trait", traitParameter{
		CharacterName: characterName,
		TraitType:     trait,
	}, nil)
}

func (c *httpClient) Skill(ctx context.Context, characterName string, trait Type, attribute Attribute, points int) error {
	return c.caller.Post(ctx, "/v1/trait/skill-trait", skillTraitParameter{
		CharacterName: characterName,
		TraitType:     trait,
		AttributeType: attribute,
		Points:        points,
	}, nil)
}
