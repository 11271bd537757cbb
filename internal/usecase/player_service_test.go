package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/record"
)

func ptr[T any](v T) *T { return &v }

func TestPlayerService_Lookups(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.players.GetByName(ctx, " CYCLIC ")
	require.NoError(t, err)
	assert.Equal(t, cyclicID, p.ID)

	_, err = env.players.GetByName(ctx, "Nobody")
	assert.True(t, listerr.Is(err, listerr.KindPlayerNotFoundName))

	_, err = env.players.Get(ctx, 404)
	assert.True(t, listerr.Is(err, listerr.KindPlayerNotFound))
}

func TestPlayerService_UpdateNationality(t *testing.T) {
	tests := []struct {
		name            string
		playerID        int64
		input           UpdatePlayerInput
		kind            listerr.Kind
		wantNationality string
		wantSubdivision string
	}{
		{name: "set nationality", playerID: knobbelboyID, input: UpdatePlayerInput{Nationality: ptr("de")}, wantNationality: "DE"},
		{name: "set both", playerID: knobbelboyID, input: UpdatePlayerInput{Nationality: ptr("DE"), Subdivision: ptr("by")}, wantNationality: "DE", wantSubdivision: "BY"},
		{name: "changing nation clears subdivision", playerID: cyclicID, input: UpdatePlayerInput{Nationality: ptr("US")}, wantNationality: "US"},
		{name: "same nation keeps subdivision", playerID: cyclicID, input: UpdatePlayerInput{Nationality: ptr("DE")}, wantNationality: "DE", wantSubdivision: "BY"},
		{name: "clear nationality", playerID: cyclicID, input: UpdatePlayerInput{Nationality: ptr("")}},
		{name: "unknown nationality", playerID: knobbelboyID, input: UpdatePlayerInput{Nationality: ptr("XX")}, kind: listerr.KindNationalityNotFound},
		{name: "subdivision without nation", playerID: knobbelboyID, input: UpdatePlayerInput{Subdivision: ptr("BY")}, kind: listerr.KindNoNationSet},
		{name: "subdivision of other nation", playerID: riotID, input: UpdatePlayerInput{Subdivision: ptr("BY")}, kind: listerr.KindSubdivisionNotFound},
		{name: "unknown player", playerID: 404, input: UpdatePlayerInput{Nationality: ptr("DE")}, kind: listerr.KindPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()

			updated, err := env.players.Update(ctx, tt.playerID, tt.input)
			if tt.kind != 0 {
				if !listerr.Is(err, tt.kind) {
					t.Fatalf("expected kind %d, got %v", tt.kind, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNationality, updated.Nationality)
			assert.Equal(t, tt.wantSubdivision, updated.Subdivision)

			stored, err := env.players.Get(ctx, tt.playerID)
			require.NoError(t, err)
			assert.Equal(t, updated, stored)
		})
	}
}

func TestPlayerService_BanRejectsRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pending, err := env.records.Submit(ctx, validSubmission())
	require.NoError(t, err)

	second := validSubmission()
	second.DemonID = kenosID
	second.Video = ""
	approved, err := env.records.Submit(ctx, second)
	require.NoError(t, err)
	_, err = env.records.Transition(ctx, approved.ID, record.StatusApproved)
	require.NoError(t, err)

	updated, err := env.players.Update(ctx, pending.PlayerID, UpdatePlayerInput{Banned: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Banned)

	for _, id := range []int64{pending.ID, approved.ID} {
		detail, err := env.records.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, record.StatusRejected, detail.Record.Status, "record %d", id)
	}

	unbanned, err := env.players.Update(ctx, pending.PlayerID, UpdatePlayerInput{Banned: ptr(false), LinkBanned: ptr(true)})
	require.NoError(t, err)
	assert.False(t, unbanned.Banned)
	assert.True(t, unbanned.LinkBanned)
}

func TestSubmitterService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.submitters.Get(ctx, 1)
	assert.True(t, listerr.Is(err, listerr.KindSubmitterNotFound))
	_, err = env.submitters.SetBanned(ctx, 1, true)
	assert.True(t, listerr.Is(err, listerr.KindSubmitterNotFound))

	created, err := env.records.Submit(ctx, validSubmission())
	require.NoError(t, err)

	s, err := env.submitters.Get(ctx, created.SubmitterID)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", s.IP)
	assert.False(t, s.Banned)

	banned, err := env.submitters.SetBanned(ctx, s.ID, true)
	require.NoError(t, err)
	assert.True(t, banned.Banned)

	s, err = env.submitters.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, s.Banned)
}
