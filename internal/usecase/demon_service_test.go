package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

func TestDemonService_Lookups(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	detail, err := env.demons.Get(ctx, sonicWaveID)
	require.NoError(t, err)
	assert.Equal(t, "Sonic Wave", detail.Demon.Name)
	assert.Equal(t, "Cyclic", detail.Publisher.Name)
	assert.Equal(t, "Cyclic", detail.Verifier.Name)
	assert.Empty(t, detail.Creators)

	byPosition, err := env.demons.GetByPosition(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, bloodbathID, byPosition.Demon.ID)

	byName, err := env.demons.FindByName(ctx, "kenos")
	require.NoError(t, err)
	assert.Equal(t, kenosID, byName.Demon.ID)

	_, err = env.demons.FindByName(ctx, "Acheron")
	assert.True(t, listerr.Is(err, listerr.KindDemonNotFoundName))

	_, err = env.demons.FindByName(ctx, "")
	assert.True(t, listerr.Is(err, listerr.KindInvalidInput))

	_, err = env.demons.Get(ctx, 404)
	assert.True(t, listerr.Is(err, listerr.KindDemonNotFound))

	_, err = env.demons.GetByPosition(ctx, 6)
	assert.True(t, listerr.Is(err, listerr.KindDemonNotFoundPosition))
}

func TestDemonService_UpdateRequirement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.demons.UpdateRequirement(ctx, tartarusID, 101)
	assert.True(t, listerr.Is(err, listerr.KindInvalidRequirement))

	_, err = env.demons.UpdateRequirement(ctx, 404, 60)
	assert.True(t, listerr.Is(err, listerr.KindDemonNotFound))

	updated, err := env.demons.UpdateRequirement(ctx, tartarusID, 70)
	require.NoError(t, err)
	assert.Equal(t, 70, updated.RequiredProgress)

	_, err = env.records.Submit(ctx, validSubmission())
	got, ok := listerr.As(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, listerr.KindInvalidProgress, got.Kind)
	assert.Equal(t, 70, got.Requirement)
}

func TestDemonService_Creators(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.demons.AddCreator(ctx, kenosID, zoinkID))
	require.NoError(t, env.demons.AddCreator(ctx, kenosID, riotID))

	err := env.demons.AddCreator(ctx, kenosID, zoinkID)
	assert.True(t, listerr.Is(err, listerr.KindCreatorExists))

	err = env.demons.AddCreator(ctx, kenosID, 404)
	assert.True(t, listerr.Is(err, listerr.KindPlayerNotFound))

	err = env.demons.AddCreator(ctx, 404, zoinkID)
	assert.True(t, listerr.Is(err, listerr.KindDemonNotFound))

	creators, err := env.demons.ListCreators(ctx, kenosID)
	require.NoError(t, err)
	assert.Len(t, creators, 2)

	require.NoError(t, env.demons.RemoveCreator(ctx, kenosID, zoinkID))
	err = env.demons.RemoveCreator(ctx, kenosID, zoinkID)
	got, ok := listerr.As(err)
	require.True(t, ok)
	assert.Equal(t, listerr.KindCreatorNotFound, got.Kind)
	assert.Equal(t, kenosID, got.ID)
	assert.Equal(t, zoinkID, got.OtherID)

	creators, err = env.demons.ListCreators(ctx, kenosID)
	require.NoError(t, err)
	require.Len(t, creators, 1)
	assert.Equal(t, "Riot", creators[0].Name)
}
