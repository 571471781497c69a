package selection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midgardgame/character-api/internal/errors"
	selectionrepo "github.com/midgardgame/character-api/internal/repositories/selection"
	"github.com/midgardgame/character-api/internal/testutils"
)

func setupRepo(t *testing.T) selectionrepo.Repository {
	t.Helper()

	client, _ := testutils.CreateTestRedisClient(t)
	repo, err := selectionrepo.NewRedis(&selectionrepo.RedisConfig{Client: client})
	require.NoError(t, err)
	return repo
}

func TestSelection_SetAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.SetSelection(ctx, selectionrepo.SetSelectionInput{
		OwnerUsername: "odin",
		CharacterName: "Thor",
	})
	require.NoError(t, err)

	out, err := repo.GetSelection(ctx, selectionrepo.GetSelectionInput{OwnerUsername: "odin"})
	require.NoError(t, err)
	require.Equal(t, "thor", out.CharacterName, "stored name should be lowercased")
}

func TestSelection_OwnerCaseInsensitive(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.SetSelection(ctx, selectionrepo.SetSelectionInput{
		OwnerUsername: "Odin",
		CharacterName: "thor",
	})
	require.NoError(t, err)

	out, err := repo.GetSelection(ctx, selectionrepo.GetSelectionInput{OwnerUsername: "ODIN"})
	require.NoError(t, err)
	require.Equal(t, "thor", out.CharacterName)
}

func TestSelection_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetSelection(context.Background(), selectionrepo.GetSelectionInput{OwnerUsername: "nobody"})
	require.Error(t, err)
	require.True(t, errors.IsNotFound(err))
}

func TestSelection_Clear(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.SetSelection(ctx, selectionrepo.SetSelectionInput{
		OwnerUsername: "odin",
		CharacterName: "thor",
	})
	require.NoError(t, err)

	_, err = repo.ClearSelection(ctx, selectionrepo.ClearSelectionInput{OwnerUsername: "odin"})
	require.NoError(t, err)

	_, err = repo.GetSelection(ctx, selectionrepo.GetSelectionInput{OwnerUsername: "odin"})
	require.True(t, errors.IsNotFound(err))
}

func TestSelection_ClearMissingIsNoop(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.ClearSelection(context.Background(), selectionrepo.ClearSelectionInput{OwnerUsername: "nobody"})
	require.NoError(t, err)
}
