package httpapi

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

const (
	maxRequestBodyBytes = 64 << 10
	maxSnapshotsPerCall = 32
)

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// decodeJSON reads the body into a pooled buffer and decodes it strictly.
func decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.decodeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(r.Body, maxRequestBodyBytes+1)); err != nil {
		return listerr.InvalidInput("read request body: " + err.Error())
	}
	if buf.Len() > maxRequestBodyBytes {
		return listerr.InvalidInput("request body too large")
	}
	if len(strings.TrimSpace(string(buf.B))) == 0 {
		return listerr.InvalidInput("request body is empty")
	}
	if err := strictJSON.Unmarshal(buf.B, dst); err != nil {
		return listerr.InvalidInput("invalid JSON payload: " + err.Error())
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return listerr.InvalidInput("validation failed: " + err.Error())
	}

	return nil
}

// decodeAndValidate is the usual body path of mutating handlers.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	if err := decodeJSON(ctx, r, dst); err != nil {
		return err
	}
	return h.validateRequest(ctx, dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, listerr.InvalidInput(name + " must be a positive integer")
	}
	return id, nil
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, listerr.InvalidInput(name + " must be an integer")
	}
	return v, nil
}

// parseAt reads the optional ?at= timestamp. Absent means the live list.
func parseAt(r *http.Request) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("at"))
	if raw == "" {
		return nil, nil
	}
	at, err := parseTimestamp(raw)
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func parseAtList(r *http.Request) ([]time.Time, error) {
	values := r.URL.Query()["at"]
	out := make([]time.Time, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			at, err := parseTimestamp(part)
			if err != nil {
				return nil, err
			}
			out = append(out, at)
		}
	}
	if len(out) == 0 {
		return nil, listerr.InvalidInput("at query parameter is required")
	}
	if len(out) > maxSnapshotsPerCall {
		return nil, listerr.InvalidInput("at most " + strconv.Itoa(maxSnapshotsPerCall) + " timestamps per request")
	}
	return out, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, listerr.InvalidInput("at must be an RFC3339 timestamp")
	}
	return at.UTC(), nil
}
