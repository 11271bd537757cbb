package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/note"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/submitter"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/domain/video"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

// SubmitRecordInput is the incoming payload for a record submission. An
// empty Status means the public path, which always queues as pending.
type SubmitRecordInput struct {
	SubmitterIP string
	PlayerName  string
	DemonID     int64
	Progress    int
	Video       string
	Status      record.Status
	Note        string
}

// RecordDetail is a record together with its notes.
type RecordDetail struct {
	Record record.Record
	Notes  []note.Note
}

// submission accumulates what the validation steps resolved.
type submission struct {
	input     SubmitRecordInput
	status    record.Status
	submitter submitter.Submitter
	player    player.Player
	demon     demon.Demon
	video     string
}

type submissionStep struct {
	name  string
	check func(ctx context.Context, repos txn.Repositories, sub *submission) error
}

type RecordService struct {
	tx         txn.Manager
	thresholds demon.Thresholds
	metrics    *Metrics
	logger     *logging.Logger
	now        func() time.Time
}

func NewRecordService(tx txn.Manager, thresholds demon.Thresholds, metrics *Metrics, logger *logging.Logger) *RecordService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RecordService{
		tx:         tx,
		thresholds: thresholds,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit runs the validation pipeline and stores the record. The pipeline
// and the insert share one write unit, so two racing submissions of the
// same player, demon or video cannot both pass the uniqueness checks.
func (s *RecordService) Submit(ctx context.Context, input SubmitRecordInput) (created record.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.Submit")
	defer func() {
		s.metrics.observeSubmission(err)
		endSpan(span, err)
	}()

	status := input.Status
	switch status {
	case "":
		status = record.StatusPending
	case record.StatusPending, record.StatusUnderConsideration, record.StatusApproved, record.StatusRejected:
	default:
		return record.Record{}, invalidInput("unknown record status %q", status)
	}

	sub := &submission{input: input, status: status}
	err = s.tx.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		for _, step := range s.steps() {
			if err := step.check(ctx, repos, sub); err != nil {
				s.logger.DebugContext(ctx, "record submission rejected", "step", step.name, "error", err)
				return err
			}
		}

		created, err = repos.Records.Create(ctx, record.Record{
			DemonID:     sub.demon.ID,
			PlayerID:    sub.player.ID,
			SubmitterID: sub.submitter.ID,
			Progress:    input.Progress,
			Video:       sub.video,
			Status:      sub.status,
			CreatedAt:   s.now().UTC(),
		})
		if err != nil {
			return err
		}

		if strings.TrimSpace(input.Note) != "" {
			if _, err := repos.Notes.Create(ctx, note.Note{
				RecordID:  created.ID,
				Content:   strings.TrimSpace(input.Note),
				CreatedAt: s.now().UTC(),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return record.Record{}, err
	}

	s.logger.InfoContext(ctx, "record submitted",
		"record_id", created.ID,
		"demon_id", created.DemonID,
		"player_id", created.PlayerID,
		"status", string(created.Status),
	)
	return created, nil
}

// steps lists the submission checks in the order they must run. Each one
// short-circuits the rest.
func (s *RecordService) steps() []submissionStep {
	return []submissionStep{
		{name: "submitter", check: s.checkSubmitter},
		{name: "player", check: s.checkPlayer},
		{name: "demon", check: s.checkDemon},
		{name: "extended", check: s.checkExtended},
		{name: "progress", check: s.checkProgress},
		{name: "video", check: s.checkVideo},
		{name: "existing", check: s.checkExisting},
		{name: "duplicate_video", check: s.checkDuplicateVideo},
	}
}

func (s *RecordService) checkSubmitter(ctx context.Context, repos txn.Repositories, sub *submission) error {
	ip := strings.TrimSpace(sub.input.SubmitterIP)
	if ip == "" {
		return invalidInput("submitter address is required")
	}
	found, err := repos.Submitters.GetOrCreateByIP(ctx, ip)
	if err != nil {
		return err
	}
	if found.Banned {
		return listerr.BannedFromSubmissions()
	}
	sub.submitter = found
	return nil
}

func (s *RecordService) checkPlayer(ctx context.Context, repos txn.Repositories, sub *submission) error {
	name := player.NormalizeName(sub.input.PlayerName)
	if name == "" {
		return invalidInput("player name is required")
	}
	found, err := repos.Players.GetOrCreateByName(ctx, name)
	if err != nil {
		return err
	}
	if found.Banned && sub.status != record.StatusRejected {
		return listerr.PlayerBanned()
	}
	sub.player = found
	return nil
}

func (s *RecordService) checkDemon(ctx context.Context, repos txn.Repositories, sub *submission) error {
	found, err := requireDemon(ctx, repos, sub.input.DemonID)
	if err != nil {
		return err
	}
	if found.Legacy || s.thresholds.IsLegacy(found.Position) {
		return listerr.SubmitLegacy()
	}
	sub.demon = found
	return nil
}

func (s *RecordService) checkExtended(_ context.Context, _ txn.Repositories, sub *submission) error {
	if s.thresholds.IsExtended(sub.demon.Position) && sub.input.Progress != 100 {
		return listerr.Non100Extended()
	}
	return nil
}

func (s *RecordService) checkProgress(_ context.Context, _ txn.Repositories, sub *submission) error {
	if sub.input.Progress < sub.demon.RequiredProgress || sub.input.Progress > 100 {
		return listerr.InvalidProgress(sub.demon.RequiredProgress)
	}
	return nil
}

func (s *RecordService) checkVideo(_ context.Context, _ txn.Repositories, sub *submission) error {
	if strings.TrimSpace(sub.input.Video) == "" {
		return nil
	}
	normalized, err := video.Validate(sub.input.Video)
	if err != nil {
		return err
	}
	sub.video = normalized
	return nil
}

func (s *RecordService) checkExisting(ctx context.Context, repos txn.Repositories, sub *submission) error {
	existing, ok, err := repos.Records.FindActive(ctx, sub.player.ID, sub.demon.ID)
	if err != nil {
		return err
	}
	if ok {
		return listerr.SubmissionExists(string(existing.Status), existing.ID)
	}
	return nil
}

func (s *RecordService) checkDuplicateVideo(ctx context.Context, repos txn.Repositories, sub *submission) error {
	if sub.video == "" {
		return nil
	}
	existing, ok, err := repos.Records.FindByVideo(ctx, sub.video)
	if err != nil {
		return err
	}
	if ok {
		return listerr.DuplicateVideo(existing.ID)
	}
	return nil
}

// Transition moves a record to next. Approved and rejected records are
// resolved and refuse any further change; an open record can never return to
// pending.
func (s *RecordService) Transition(ctx context.Context, recordID int64, next record.Status) (updated record.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.Transition")
	defer func() {
		s.metrics.observeTransition(string(next), err)
		endSpan(span, err)
	}()

	if _, parseErr := record.ParseStatus(string(next)); parseErr != nil {
		return record.Record{}, invalidInput("%v", parseErr)
	}

	err = s.tx.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		current, err := requireRecord(ctx, repos, recordID)
		if err != nil {
			return err
		}
		if current.Status.Resolved() {
			return listerr.RecordResolved(string(current.Status))
		}
		if !current.Status.CanTransitionTo(next) {
			return invalidInput("record cannot move from %s to %s", current.Status, next)
		}

		if next != record.StatusRejected {
			owner, ok, err := repos.Players.GetByID(ctx, current.PlayerID)
			if err != nil {
				return err
			}
			if !ok {
				return listerr.PlayerNotFound(current.PlayerID)
			}
			if owner.Banned {
				return listerr.PlayerBanned()
			}
		}

		if err := repos.Records.UpdateStatus(ctx, recordID, next); err != nil {
			return err
		}
		updated = current
		updated.Status = next
		return nil
	})
	if err != nil {
		return record.Record{}, err
	}

	s.logger.InfoContext(ctx, "record status changed", "record_id", recordID, "status", string(next))
	return updated, nil
}

func (s *RecordService) Get(ctx context.Context, recordID int64) (RecordDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.Get")
	defer span.End()

	var out RecordDetail
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		found, err := requireRecord(ctx, repos, recordID)
		if err != nil {
			return err
		}
		notes, err := repos.Notes.ListByRecord(ctx, recordID)
		if err != nil {
			return err
		}
		out = RecordDetail{Record: found, Notes: notes}
		return nil
	})
	return out, err
}

// AddNote attaches a note to a record in any status.
func (s *RecordService) AddNote(ctx context.Context, recordID int64, content string) (created note.Note, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.AddNote")
	defer func() { endSpan(span, err) }()

	if err := note.ValidateContent(content); err != nil {
		return note.Note{}, err
	}

	err = s.tx.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		if _, err := requireRecord(ctx, repos, recordID); err != nil {
			return err
		}
		created, err = repos.Notes.Create(ctx, note.Note{
			RecordID:  recordID,
			Content:   strings.TrimSpace(content),
			CreatedAt: s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return note.Note{}, err
	}
	return created, nil
}

func (s *RecordService) DeleteNote(ctx context.Context, recordID, noteID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.DeleteNote")
	defer func() { endSpan(span, err) }()

	return s.tx.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		if _, err := requireRecord(ctx, repos, recordID); err != nil {
			return err
		}
		deleted, err := repos.Notes.Delete(ctx, recordID, noteID)
		if err != nil {
			return err
		}
		if !deleted {
			return listerr.NoteNotFound(noteID, recordID)
		}
		return nil
	})
}

func requireRecord(ctx context.Context, repos txn.Repositories, recordID int64) (record.Record, error) {
	item, ok, err := repos.Records.GetByID(ctx, recordID)
	if err != nil {
		return record.Record{}, err
	}
	if !ok {
		return record.Record{}, listerr.RecordNotFound(recordID)
	}
	return item, nil
}
