package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisadascse72/Recipe-generator/pkg/errors"
	"github.com/lisadascse72/Recipe-generator/pkg/recipe"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleGeneration(id string, createdAt time.Time) recipe.Generation {
	return recipe.Generation{
		ID: id,
		Preferences: recipe.Preferences{
			Cuisine:           "Mexican",
			DietaryPreference: "Vegan",
			Allergy:           "peanuts",
			Ingredients:       []string{"tofu", "beans", "rice"},
			Wine:              "Red",
		},
		Prompt:    "prompt text",
		Recipes:   "1. Tofu tacos ...",
		Model:     "gpt-4o",
		Usage:     recipe.Usage{PromptTokens: 120, CompletionTokens: 800, TotalTokens: 920},
		CreatedAt: createdAt,
	}
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	gen := sampleGeneration("abc", time.Now().UTC())
	require.NoError(t, store.Save(ctx, gen))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, gen.Recipes, got.Recipes)
	assert.Equal(t, gen.Preferences, got.Preferences)
	assert.Equal(t, gen.Usage, got.Usage)
	assert.True(t, gen.CreatedAt.Equal(got.CreatedAt))
}

func TestSaveRequiresID(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(context.Background(), recipe.Generation{})
	assert.Error(t, err)
	assert.Equal(t, errors.CodeMissingParameter, errors.CodeOf(err))
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, store.Save(ctx, sampleGeneration(id, base.Add(time.Duration(i)*time.Hour))))
	}

	gens, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, gens, 3)
	assert.Equal(t, "newest", gens[0].ID)
	assert.Equal(t, "middle", gens[1].ID)
	assert.Equal(t, "oldest", gens[2].ID)
}

func TestRecentHonorsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		gen := sampleGeneration(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.Save(ctx, gen))
	}

	gens, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, gens, 2)
	assert.Equal(t, "e", gens[0].ID)
}

func TestRecentEmptyStore(t *testing.T) {
	store := newTestStore(t)

	gens, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, gens)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleGeneration("abc", time.Now())))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, err := store.Get(ctx, "abc")
	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))

	err = store.Delete(ctx, "abc")
	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))
}

func TestSaveOverwritesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	gen := sampleGeneration("abc", time.Now())
	require.NoError(t, store.Save(ctx, gen))

	gen.Recipes = "updated"
	require.NoError(t, store.Save(ctx, gen))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Recipes)
}
