// Package notifications publishes character lifecycle events for sibling
// services. Publishing is fire-and-forget: callers log failures but never
// fail the triggering operation over a lost notification.
package notifications

//go:generate mockgen -destination=mock/mock_publisher.go -package=notificationsmock github.com/midgardgame/character-api/internal/notifications Publisher

import (
	"context"
	"encoding/json"

	"github.com/midgardgame/character-api/internal/errors"
	redisclient "github.com/midgardgame/character-api/internal/redis"
)

// Topics the character service publishes on
const (
	TopicCharacterSelect = "character.select"
	TopicCharacterDelete = "character.delete"
)

// Message is the event payload sent to subscribers. Username may be empty
// for events that concern no particular account.
type Message struct {
	Username string            `json:"username"`
	Message  string            `json:"message"`
	Data     map[string]string `json:"data,omitempty"`
}

// AddData attaches a key-value pair to the message and returns it
func (m Message) AddData(key, value string) Message {
	if m.Data == nil {
		m.Data = make(map[string]string)
	}
	m.Data[key] = value
	return m
}

// Publisher emits events to a topic. Implementations provide at-most-once
// delivery with no acknowledgment.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg Message) error
}

type redisPublisher struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis publisher.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a publisher backed by Redis pub/sub
func NewRedis(cfg *RedisConfig) (Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisPublisher{client: cfg.Client}, nil
}

func (p *redisPublisher) Publish(ctx context.Context, topic string, msg Message) error {
	if topic == "" {
		return errors.InvalidArgument("topic cannot be empty")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrapf(err, "failed to encode notification for %s", topic)
	}

	if err := p.client.Publish(ctx, topic, payload).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish to "+topic)
	}

	return nil
}
