package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/submitter"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	demonmock "github.com/riskibarqy/demonlist/internal/mocks/domain/demon"
	playermock "github.com/riskibarqy/demonlist/internal/mocks/domain/player"
	recordmock "github.com/riskibarqy/demonlist/internal/mocks/domain/record"
	submittermock "github.com/riskibarqy/demonlist/internal/mocks/domain/submitter"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

type recordMocks struct {
	demons     *demonmock.Repository
	players    *playermock.Repository
	records    *recordmock.Repository
	submitters *submittermock.Repository
}

func newMockedRecordService(t *testing.T) (*RecordService, recordMocks) {
	t.Helper()

	m := recordMocks{
		demons:     demonmock.NewRepository(t),
		players:    playermock.NewRepository(t),
		records:    recordmock.NewRepository(t),
		submitters: submittermock.NewRepository(t),
	}
	service := NewRecordService(
		fixedUnit{repos: txn.Repositories{
			Demons:     m.demons,
			Players:    m.players,
			Records:    m.records,
			Submitters: m.submitters,
		}},
		testThresholds, NewMetrics(nil), logging.NewNop(),
	)
	return service, m
}

func mockedSubmission() SubmitRecordInput {
	return SubmitRecordInput{
		SubmitterIP: "203.0.113.7",
		PlayerName:  "Riot",
		DemonID:     tartarusID,
		Progress:    100,
		Video:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
}

func TestRecordService_Submit_BannedSubmitterStopsPipelineUsingMockery(t *testing.T) {
	t.Parallel()

	service, m := newMockedRecordService(t)
	m.submitters.On("GetOrCreateByIP", mock.Anything, "203.0.113.7").
		Return(submitter.Submitter{ID: 3, IP: "203.0.113.7", Banned: true}, nil).
		Once()

	_, err := service.Submit(context.Background(), mockedSubmission())
	if !listerr.Is(err, listerr.KindBannedFromSubmissions) {
		t.Fatalf("expected banned submitter error, got %v", err)
	}
	m.players.AssertNotCalled(t, "GetOrCreateByName", mock.Anything, mock.Anything)
	m.records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordService_Submit_DuplicateVideoUsingMockery(t *testing.T) {
	t.Parallel()

	service, m := newMockedRecordService(t)
	m.submitters.On("GetOrCreateByIP", mock.Anything, "203.0.113.7").
		Return(submitter.Submitter{ID: 3, IP: "203.0.113.7"}, nil).
		Once()
	m.players.On("GetOrCreateByName", mock.Anything, "Riot").
		Return(player.Player{ID: riotID, Name: "Riot"}, nil).
		Once()
	m.demons.On("GetByID", mock.Anything, tartarusID).
		Return(demon.Demon{ID: tartarusID, Name: "Tartarus", Position: 1, RequiredProgress: 51}, true, nil).
		Once()
	m.records.On("FindActive", mock.Anything, riotID, tartarusID).
		Return(record.Record{}, false, nil).
		Once()
	m.records.On("FindByVideo", mock.Anything, mock.AnythingOfType("string")).
		Return(record.Record{ID: 12, Status: record.StatusApproved}, true, nil).
		Once()

	_, err := service.Submit(context.Background(), mockedSubmission())
	if !listerr.Is(err, listerr.KindDuplicateVideo) {
		t.Fatalf("expected duplicate video error, got %v", err)
	}
	m.records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordService_Submit_PropagatesStorageErrorUsingMockery(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	service, m := newMockedRecordService(t)
	m.submitters.On("GetOrCreateByIP", mock.Anything, "203.0.113.7").
		Return(submitter.Submitter{ID: 3, IP: "203.0.113.7"}, nil).
		Once()
	m.players.On("GetOrCreateByName", mock.Anything, "Riot").
		Return(player.Player{ID: riotID, Name: "Riot"}, nil).
		Once()
	m.demons.On("GetByID", mock.Anything, tartarusID).
		Return(demon.Demon{ID: tartarusID, Name: "Tartarus", Position: 1, RequiredProgress: 51}, true, nil).
		Once()
	m.records.On("FindActive", mock.Anything, riotID, tartarusID).
		Return(record.Record{}, false, boom).
		Once()

	_, err := service.Submit(context.Background(), mockedSubmission())
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
	m.records.AssertNotCalled(t, "FindByVideo", mock.Anything, mock.Anything)
}

func TestRecordService_Transition_RejectsResolvedRecordUsingMockery(t *testing.T) {
	t.Parallel()

	service, m := newMockedRecordService(t)
	m.records.On("GetByID", mock.Anything, int64(40)).
		Return(record.Record{ID: 40, PlayerID: riotID, DemonID: kenosID, Status: record.StatusApproved}, true, nil).
		Once()

	_, err := service.Transition(context.Background(), 40, record.StatusPending)
	if !listerr.Is(err, listerr.KindRecordResolved) {
		t.Fatalf("expected resolved record error, got %v", err)
	}
	m.records.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
