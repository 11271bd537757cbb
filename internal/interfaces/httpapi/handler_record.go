package httpapi

import (
	"net/http"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/usecase"
)

// SubmitRecord is the public submission endpoint. The submitter is whoever
// the client address resolves to, and the record always starts pending.
func (h *Handler) SubmitRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRecord")
	defer span.End()

	var req submitRecordRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	submitterIP := clientIPFromContext(ctx)
	if submitterIP == "" {
		writeError(ctx, w, listerr.InvalidInput("could not determine client address"))
		return
	}

	created, err := h.recordService.Submit(ctx, usecase.SubmitRecordInput{
		SubmitterIP: submitterIP,
		PlayerName:  req.Player,
		DemonID:     req.DemonID,
		Progress:    req.Progress,
		Video:       req.Video,
		Status:      record.StatusPending,
		Note:        req.Note,
	})
	if err != nil {
		h.fail(ctx, w, "submit record failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordToDTO(created, nil))
}

// ReviewRecord lets list staff add a record with its final status directly.
func (h *Handler) ReviewRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReviewRecord")
	defer span.End()

	var req reviewRecordRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	status, err := record.ParseStatus(req.Status)
	if err != nil {
		writeError(ctx, w, listerr.InvalidInput(err.Error()))
		return
	}

	submitterIP := clientIPFromContext(ctx)
	if submitterIP == "" {
		writeError(ctx, w, listerr.InvalidInput("could not determine client address"))
		return
	}

	created, err := h.recordService.Submit(ctx, usecase.SubmitRecordInput{
		SubmitterIP: submitterIP,
		PlayerName:  req.Player,
		DemonID:     req.DemonID,
		Progress:    req.Progress,
		Video:       req.Video,
		Status:      status,
		Note:        req.Note,
	})
	if err != nil {
		h.fail(ctx, w, "review record failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordToDTO(created, nil))
}

func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecord")
	defer span.End()

	recordID, err := pathID(r, "recordID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.recordService.Get(ctx, recordID)
	if err != nil {
		h.fail(ctx, w, "get record failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordToDTO(detail.Record, detail.Notes))
}

func (h *Handler) UpdateRecordStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRecordStatus")
	defer span.End()

	recordID, err := pathID(r, "recordID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateRecordStatusRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	status, err := record.ParseStatus(req.Status)
	if err != nil {
		writeError(ctx, w, listerr.InvalidInput(err.Error()))
		return
	}

	updated, err := h.recordService.Transition(ctx, recordID, status)
	if err != nil {
		h.fail(ctx, w, "transition record failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordToDTO(updated, nil))
}

func (h *Handler) AddRecordNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRecordNote")
	defer span.End()

	recordID, err := pathID(r, "recordID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addNoteRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.recordService.AddNote(ctx, recordID, req.Content)
	if err != nil {
		h.fail(ctx, w, "add record note failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, noteToDTO(created))
}

func (h *Handler) DeleteRecordNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRecordNote")
	defer span.End()

	recordID, err := pathID(r, "recordID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	noteID, err := pathID(r, "noteID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.recordService.DeleteNote(ctx, recordID, noteID); err != nil {
		h.fail(ctx, w, "delete record note failed", err)
		return
	}

	writeNoContent(w)
}
