package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
)

func validSubmission() SubmitRecordInput {
	return SubmitRecordInput{
		SubmitterIP: "10.0.0.1",
		PlayerName:  "Trick",
		DemonID:     tartarusID,
		Progress:    60,
		Video:       "https://youtu.be/dQw4w9WgXcQ?t=5",
	}
}

func TestRecordService_SubmitAcceptsValidRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := validSubmission()
	input.Note = "  first try  "
	created, err := env.records.Submit(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, record.StatusPending, created.Status)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", created.Video)
	assert.Equal(t, int64(5), created.PlayerID)
	assert.Equal(t, tartarusID, created.DemonID)
	assert.Equal(t, env.clock.now(), created.CreatedAt)

	detail, err := env.records.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, detail.Record)
	require.Len(t, detail.Notes, 1)
	assert.Equal(t, "first try", detail.Notes[0].Content)
}

func TestRecordService_SubmitCreatesUnknownPlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := validSubmission()
	input.PlayerName = "  Npesta "
	input.Video = ""
	created, err := env.records.Submit(ctx, input)
	require.NoError(t, err)

	found, err := env.players.GetByName(ctx, "npesta")
	require.NoError(t, err)
	assert.Equal(t, found.ID, created.PlayerID)
	assert.Equal(t, "Npesta", found.Name)
	assert.Empty(t, created.Video)
}

func TestRecordService_SubmitPipelineRejections(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*SubmitRecordInput)
		kind        listerr.Kind
		requirement int
	}{
		{name: "missing submitter address", mutate: func(in *SubmitRecordInput) { in.SubmitterIP = "" }, kind: listerr.KindInvalidInput},
		{name: "missing player name", mutate: func(in *SubmitRecordInput) { in.PlayerName = " " }, kind: listerr.KindInvalidInput},
		{name: "unknown demon", mutate: func(in *SubmitRecordInput) { in.DemonID = 999 }, kind: listerr.KindDemonNotFound},
		{name: "legacy demon", mutate: func(in *SubmitRecordInput) { in.DemonID = yatagarasuID; in.Progress = 100 }, kind: listerr.KindSubmitLegacy},
		{name: "extended demon below 100", mutate: func(in *SubmitRecordInput) { in.DemonID = sonicWaveID; in.Progress = 99 }, kind: listerr.KindNon100Extended},
		{name: "progress below requirement", mutate: func(in *SubmitRecordInput) { in.Progress = 50 }, kind: listerr.KindInvalidProgress, requirement: 51},
		{name: "progress above 100", mutate: func(in *SubmitRecordInput) { in.Progress = 101 }, kind: listerr.KindInvalidProgress, requirement: 51},
		{name: "video without id", mutate: func(in *SubmitRecordInput) { in.Video = "https://vimeo.com/channels/staff" }, kind: listerr.KindInvalidURLFormat},
		{name: "video with credentials", mutate: func(in *SubmitRecordInput) { in.Video = "https://a:b@youtube.com/watch?v=dQw4w9WgXcQ" }, kind: listerr.KindURLAuthenticated},
		{name: "unknown status", mutate: func(in *SubmitRecordInput) { in.Status = "bogus" }, kind: listerr.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			input := validSubmission()
			tt.mutate(&input)

			_, err := env.records.Submit(context.Background(), input)
			got, ok := listerr.As(err)
			if !ok || got.Kind != tt.kind {
				t.Fatalf("expected kind %d, got %v", tt.kind, err)
			}
			if tt.requirement != 0 && got.Requirement != tt.requirement {
				t.Fatalf("unexpected requirement: got=%d want=%d", got.Requirement, tt.requirement)
			}
		})
	}
}

func TestRecordService_SubmitExtendedAcceptsFullCompletion(t *testing.T) {
	env := newTestEnv(t)

	input := validSubmission()
	input.DemonID = bloodbathID
	input.Progress = 100
	created, err := env.records.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 100, created.Progress)
}

func TestRecordService_BannedSubmitterShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.records.Submit(ctx, validSubmission())
	require.NoError(t, err)
	_, err = env.submitters.SetBanned(ctx, first.SubmitterID, true)
	require.NoError(t, err)

	// Every later check would fail too; the submitter check runs first.
	_, err = env.records.Submit(ctx, SubmitRecordInput{
		SubmitterIP: "10.0.0.1",
		PlayerName:  "Trick",
		DemonID:     999,
		Progress:    3,
		Video:       "ftp://nope",
	})
	assert.True(t, listerr.Is(err, listerr.KindBannedFromSubmissions), "got %v", err)

	other := validSubmission()
	other.SubmitterIP = "10.0.0.2"
	other.DemonID = kenosID
	other.Video = ""
	_, err = env.records.Submit(ctx, other)
	assert.NoError(t, err, "ban is per submitter")
}

func TestRecordService_BannedPlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	banned := true
	_, err := env.players.Update(ctx, riotID, UpdatePlayerInput{Banned: &banned})
	require.NoError(t, err)

	input := validSubmission()
	input.PlayerName = "riot"
	input.DemonID = yatagarasuID
	_, err = env.records.Submit(ctx, input)
	assert.True(t, listerr.Is(err, listerr.KindPlayerBanned), "player check runs before the demon check, got %v", err)

	input.DemonID = tartarusID
	input.Status = record.StatusRejected
	created, err := env.records.Submit(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, record.StatusRejected, created.Status)
}

func TestRecordService_SubmissionExists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.records.Submit(ctx, validSubmission())
	require.NoError(t, err)

	again := validSubmission()
	again.Video = ""
	again.Progress = 70
	_, err = env.records.Submit(ctx, again)
	got, ok := listerr.As(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, listerr.KindSubmissionExists, got.Kind)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, first.ID, got.ID)

	_, err = env.records.Transition(ctx, first.ID, record.StatusRejected)
	require.NoError(t, err)

	_, err = env.records.Submit(ctx, again)
	assert.NoError(t, err, "rejected records do not block a new submission")
}

func TestRecordService_DuplicateVideoAcrossPlayersAndStatuses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.records.Submit(ctx, validSubmission())
	require.NoError(t, err)
	_, err = env.records.Transition(ctx, first.ID, record.StatusRejected)
	require.NoError(t, err)

	other := validSubmission()
	other.PlayerName = "Zoink"
	other.DemonID = kenosID
	other.Video = "https://m.youtube.com/watch?v=dQw4w9WgXcQ&feature=share"
	_, err = env.records.Submit(ctx, other)

	got, ok := listerr.As(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, listerr.KindDuplicateVideo, got.Kind)
	assert.Equal(t, first.ID, got.ID)
}

func TestRecordService_Transition(t *testing.T) {
	tests := []struct {
		name  string
		path  []record.Status
		final record.Status
		kind  listerr.Kind
	}{
		{name: "approve pending", final: record.StatusApproved},
		{name: "reject pending", final: record.StatusRejected},
		{name: "consider pending", final: record.StatusUnderConsideration},
		{name: "approve after consideration", path: []record.Status{record.StatusUnderConsideration}, final: record.StatusApproved},
		{name: "back to pending", path: []record.Status{record.StatusUnderConsideration}, final: record.StatusPending, kind: listerr.KindInvalidInput},
		{name: "pending to pending", final: record.StatusPending, kind: listerr.KindInvalidInput},
		{name: "approved is resolved", path: []record.Status{record.StatusApproved}, final: record.StatusRejected, kind: listerr.KindRecordResolved},
		{name: "rejected is resolved", path: []record.Status{record.StatusRejected}, final: record.StatusApproved, kind: listerr.KindRecordResolved},
		{name: "unknown status", final: "bogus", kind: listerr.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()

			created, err := env.records.Submit(ctx, validSubmission())
			require.NoError(t, err)
			for _, status := range tt.path {
				_, err := env.records.Transition(ctx, created.ID, status)
				require.NoError(t, err)
			}

			updated, err := env.records.Transition(ctx, created.ID, tt.final)
			if tt.kind != 0 {
				if !listerr.Is(err, tt.kind) {
					t.Fatalf("expected kind %d, got %v", tt.kind, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.final, updated.Status)

			detail, err := env.records.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.final, detail.Record.Status)
		})
	}
}

func TestRecordService_TransitionRefusesBannedPlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.records.Submit(ctx, validSubmission())
	require.NoError(t, err)

	// Flip the flag directly so the record stays pending.
	err = env.store.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		p, _, err := repos.Players.GetByID(ctx, created.PlayerID)
		if err != nil {
			return err
		}
		p.Banned = true
		return repos.Players.Update(ctx, p)
	})
	require.NoError(t, err)

	_, err = env.records.Transition(ctx, created.ID, record.StatusApproved)
	assert.True(t, listerr.Is(err, listerr.KindPlayerBanned), "got %v", err)

	_, err = env.records.Transition(ctx, created.ID, record.StatusRejected)
	assert.NoError(t, err)

	_, err = env.records.Transition(ctx, 404, record.StatusRejected)
	assert.True(t, listerr.Is(err, listerr.KindRecordNotFound))
}

func TestRecordService_Notes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.records.Submit(ctx, validSubmission())
	require.NoError(t, err)

	_, err = env.records.AddNote(ctx, created.ID, "   ")
	assert.True(t, listerr.Is(err, listerr.KindNoteEmpty))

	_, err = env.records.AddNote(ctx, 404, "hello")
	assert.True(t, listerr.Is(err, listerr.KindRecordNotFound))

	n, err := env.records.AddNote(ctx, created.ID, " looks legit ")
	require.NoError(t, err)
	assert.Equal(t, "looks legit", n.Content)

	err = env.records.DeleteNote(ctx, created.ID, n.ID+100)
	got, ok := listerr.As(err)
	require.True(t, ok)
	assert.Equal(t, listerr.KindNoteNotFound, got.Kind)

	require.NoError(t, env.records.DeleteNote(ctx, created.ID, n.ID))
	detail, err := env.records.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Notes)
}
