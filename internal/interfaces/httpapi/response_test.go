package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("submit: %w", listerr.SubmissionExists("approved", 7)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "FAILED_PRECONDITION" {
		t.Fatalf("expected error status FAILED_PRECONDITION, got %v", errorObj["status"])
	}
	if got, _ := errorObj["code"].(float64); got != 42217 {
		t.Fatalf("expected error code 42217, got %v", errorObj["code"])
	}
	if got, _ := errorObj["message"].(string); got != "This record is already approved" {
		t.Fatalf("unexpected error message: %v", errorObj["message"])
	}
}

func TestWriteError_HidesUnclassifiedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("pq: connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, _ := body["error"].(map[string]any)
	if got, _ := errorObj["code"].(float64); got != 50000 {
		t.Fatalf("expected error code 50000, got %v", errorObj["code"])
	}
	if msg, _ := errorObj["message"].(string); msg == "" || msg == "pq: connection reset by peer" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestMapError_StatusFromCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantGoogle string
	}{
		{name: "invalid input", err: listerr.InvalidInput("x"), wantStatus: http.StatusBadRequest, wantGoogle: "INVALID_ARGUMENT"},
		{name: "unauthorized", err: listerr.Unauthorized(), wantStatus: http.StatusUnauthorized, wantGoogle: "UNAUTHENTICATED"},
		{name: "banned submitter", err: listerr.BannedFromSubmissions(), wantStatus: http.StatusForbidden, wantGoogle: "PERMISSION_DENIED"},
		{name: "missing demon", err: listerr.DemonNotFound(9), wantStatus: http.StatusNotFound, wantGoogle: "NOT_FOUND"},
		{name: "duplicate video", err: listerr.DuplicateVideo(3), wantStatus: http.StatusConflict, wantGoogle: "ALREADY_EXISTS"},
		{name: "legacy submission", err: listerr.SubmitLegacy(), wantStatus: http.StatusUnprocessableEntity, wantGoogle: "FAILED_PRECONDITION"},
		{name: "database down", err: listerr.DatabaseConnection(fmt.Errorf("dial tcp")), wantStatus: http.StatusInternalServerError, wantGoogle: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.wantStatus {
				t.Fatalf("unexpected http status: got=%d want=%d", got.HTTPStatus, tt.wantStatus)
			}
			if got.Status != tt.wantGoogle {
				t.Fatalf("unexpected status: got=%s want=%s", got.Status, tt.wantGoogle)
			}
			if got.Code/100 != got.HTTPStatus {
				t.Fatalf("code %d does not match http status %d", got.Code, got.HTTPStatus)
			}
		})
	}
}
