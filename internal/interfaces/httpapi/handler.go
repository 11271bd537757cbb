package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
	"github.com/riskibarqy/demonlist/internal/usecase"
)

type Services struct {
	Overview   *usecase.OverviewService
	Machine    *usecase.TimeMachine
	Positions  *usecase.PositionService
	Demons     *usecase.DemonService
	Records    *usecase.RecordService
	Players    *usecase.PlayerService
	Submitters *usecase.SubmitterService
}

type Handler struct {
	overviewService  *usecase.OverviewService
	timeMachine      *usecase.TimeMachine
	positionService  *usecase.PositionService
	demonService     *usecase.DemonService
	recordService    *usecase.RecordService
	playerService    *usecase.PlayerService
	submitterService *usecase.SubmitterService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		overviewService:  services.Overview,
		timeMachine:      services.Machine,
		positionService:  services.Positions,
		demonService:     services.Demons,
		recordService:    services.Records,
		playerService:    services.Players,
		submitterService: services.Submitters,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs and renders err. Caller mistakes are logged at debug level, server
// side failures at error level with their cause.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		args := []any{"error", err, "request_id", requestIDFromContext(ctx)}
		if domainErr, ok := listerr.As(err); ok && domainErr.Unwrap() != nil {
			args = append(args, "cause", domainErr.Unwrap())
		}
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.DebugContext(ctx, msg, "error", err, "request_id", requestIDFromContext(ctx))
	}
	writeError(ctx, w, err)
}
