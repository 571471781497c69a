package character

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/midgardgame/character-api/internal/entities"
	"github.com/midgardgame/character-api/internal/errors"
	"github.com/midgardgame/character-api/internal/pkg/clock"
)

const schema = `
CREATE TABLE IF NOT EXISTS character (
    character_name              TEXT PRIMARY KEY,
    display_character_name      TEXT NOT NULL UNIQUE,
    owner_username              TEXT NOT NULL,
    head_item                   TEXT NOT NULL DEFAULT 'NONE',
    head_item_meta_data         TEXT NOT NULL DEFAULT '',
    beard_item                  TEXT NOT NULL DEFAULT 'NONE',
    beard_item_meta_data        TEXT NOT NULL DEFAULT '',
    chest_item                  TEXT NOT NULL DEFAULT 'NONE',
    chest_item_meta_data        TEXT NOT NULL DEFAULT '',
    hands_item                  TEXT NOT NULL DEFAULT 'NONE',
    hands_item_meta_data        TEXT NOT NULL DEFAULT '',
    legs_item                   TEXT NOT NULL DEFAULT 'NONE',
    legs_item_meta_data         TEXT NOT NULL DEFAULT '',
    feet_item                   TEXT NOT NULL DEFAULT 'NONE',
    feet_item_meta_data         TEXT NOT NULL DEFAULT '',
    mainhand_armament           TEXT NOT NULL DEFAULT 'NONE',
    mainhand_armament_meta_data TEXT NOT NULL DEFAULT '',
    off_hand_armament           TEXT NOT NULL DEFAULT 'NONE',
    off_hand_armament_meta_data TEXT NOT NULL DEFAULT '',
    created_at                  INTEGER NOT NULL,
    updated_at                  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_character_owner ON character (lower(owner_username));
`

const characterColumns = `character_name, display_character_name, owner_username,
head_item, head_item_meta_data, beard_item, beard_item_meta_data,
chest_item, chest_item_meta_data, hands_item, hands_item_meta_data,
legs_item, legs_item_meta_data, feet_item, feet_item_meta_data,
mainhand_armament, mainhand_armament_meta_data,
off_hand_armament, off_hand_armament_meta_data,
created_at, updated_at`

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite character repository.
type SQLiteConfig struct {
	// Path is the database file location
	Path string
	// Clock supplies row timestamps; defaults to the real clock
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("database path is required")
	}
	return nil
}

// NewSQLite opens a SQLite-backed character repository and ensures the schema
// exists. The caller owns the returned Close.
func NewSQLite(cfg *SQLiteConfig) (Repository, *sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open sqlite database %s", cfg.Path)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite database")
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrapf(err, "failed to apply character schema")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: db, clock: c}, db, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	if input.Character.CharacterName == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	now := r.clock.Now().Unix()
	input.Character.CreatedAt = now
	input.Character.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `INSERT INTO character (`+characterColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		characterArgs(input.Character)...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("character %s already exists", input.Character.CharacterName)
		}
		return nil, errors.Wrapf(err, "failed to insert character %s", input.Character.CharacterName)
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+characterColumns+` FROM character WHERE character_name = ?`,
		strings.ToLower(input.CharacterName))

	char, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character %s not found", input.CharacterName)
		}
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterName)
	}

	return &GetOutput{Character: char}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	if input.Character.CharacterName == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	input.Character.UpdatedAt = r.clock.Now().Unix()

	res, err := r.db.ExecContext(ctx, `UPDATE character SET
owner_username = ?,
head_item = ?, head_item_meta_data = ?,
beard_item = ?, beard_item_meta_data = ?,
chest_item = ?, chest_item_meta_data = ?,
hands_item = ?, hands_item_meta_data = ?,
legs_item = ?, legs_item_meta_data = ?,
feet_item = ?, feet_item_meta_data = ?,
mainhand_armament = ?, mainhand_armament_meta_data = ?,
off_hand_armament = ?, off_hand_armament_meta_data = ?,
updated_at = ?
WHERE character_name = ?`,
		input.Character.OwnerUsername,
		input.Character.HeadItem, input.Character.HeadItemMetaData,
		input.Character.BeardItem, input.Character.BeardItemMetaData,
		input.Character.ChestItem, input.Character.ChestItemMetaData,
		input.Character.HandsItem, input.Character.HandsItemMetaData,
		input.Character.LegsItem, input.Character.LegsItemMetaData,
		input.Character.FeetItem, input.Character.FeetItemMetaData,
		input.Character.MainhandArmament, input.Character.MainhandArmamentMetaData,
		input.Character.OffHandArmament, input.Character.OffHandArmamentMetaData,
		input.Character.UpdatedAt,
		input.Character.CharacterName,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", input.Character.CharacterName)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read update result for %s", input.Character.CharacterName)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character %s not found", input.Character.CharacterName)
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM character WHERE character_name = ?`,
		strings.ToLower(input.CharacterName))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterName)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read delete result for %s", input.CharacterName)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character %s not found", input.CharacterName)
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerUsername == "" {
		return nil, errors.InvalidArgument("owner username cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+characterColumns+` FROM character WHERE lower(owner_username) = ? ORDER BY character_name`,
		strings.ToLower(input.OwnerUsername))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for owner %s", input.OwnerUsername)
	}
	defer func() { _ = rows.Close() }()

	var characters []*entities.Character
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan character row")
		}
		characters = append(characters, char)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate character rows")
	}

	return &ListByOwnerOutput{Characters: characters}, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(s scanner) (*entities.Character, error) {
	var c entities.Character
	err := s.Scan(
		&c.CharacterName, &c.DisplayCharacterName, &c.OwnerUsername,
		&c.HeadItem, &c.HeadItemMetaData,
		&c.BeardItem, &c.BeardItemMetaData,
		&c.ChestItem, &c.ChestItemMetaData,
		&c.HandsItem, &c.HandsItemMetaData,
		&c.LegsItem, &c.LegsItemMetaData,
		&c.FeetItem, &c.FeetItemMetaData,
		&c.MainhandArmament, &c.MainhandArmamentMetaData,
		&c.OffHandArmament, &c.OffHandArmamentMetaData,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func characterArgs(c *entities.Character) []any {
	return []any{
		c.CharacterName, c.DisplayCharacterName, c.OwnerUsername,
		c.HeadItem, c.HeadItemMetaData,
		c.BeardItem, c.BeardItemMetaData,
		c.ChestItem, c.ChestItemMetaData,
		c.HandsItem, c.HandsItemMetaData,
		c.LegsItem, c.LegsItemMetaData,
		c.FeetItem, c.FeetItemMetaData,
		c.MainhandArmament, c.MainhandArmamentMetaData,
		c.OffHandArmament, c.OffHandArmamentMetaData,
		c.CreatedAt, c.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
