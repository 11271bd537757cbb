package httpapi

import (
	"net/http"

	"github.com/riskibarqy/demonlist/internal/platform/id"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

type RouterConfig struct {
	Logger             *logging.Logger
	IDs                id.Generator
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	AdminToken         string
	// ClientIP decides the submitter address. Nil means the socket address.
	ClientIP *ClientIPResolver
	// Metrics is mounted on GET /metrics when set.
	Metrics http.Handler
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled, cfg.Metrics)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, cfg.AdminToken)

	return RequestTracing(RequestID(ids, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, ClientIP(cfg.ClientIP, recoverPanic(logger, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "request_id", requestIDFromContext(ctx))
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
