package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/usecase"
)

func (h *Handler) GetDemon(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDemon")
	defer span.End()

	demonID, err := pathID(r, "demonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.demonService.Get(ctx, demonID)
	if err != nil {
		h.fail(ctx, w, "get demon failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, demonDetailToDTO(detail))
}

func (h *Handler) GetDemonByPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDemonByPosition")
	defer span.End()

	position, err := pathInt(r, "position")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.demonService.GetByPosition(ctx, position)
	if err != nil {
		h.fail(ctx, w, "get demon by position failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, demonDetailToDTO(detail))
}

func (h *Handler) FindDemonByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindDemonByName")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(ctx, w, listerr.InvalidInput("name query parameter is required"))
		return
	}

	detail, err := h.demonService.FindByName(ctx, name)
	if err != nil {
		h.fail(ctx, w, "find demon by name failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, demonDetailToDTO(detail))
}

func (h *Handler) CreateDemon(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDemon")
	defer span.End()

	var req createDemonRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.positionService.Insert(ctx, usecase.InsertDemonInput{
		Name:        req.Name,
		Position:    req.Position,
		Requirement: req.Requirement,
		Video:       req.Video,
		PublisherID: req.PublisherID,
		VerifierID:  req.VerifierID,
		CreatorIDs:  req.CreatorIDs,
	})
	if err != nil {
		h.fail(ctx, w, "create demon failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, demonToDTO(created))
}

func (h *Handler) MoveDemon(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MoveDemon")
	defer span.End()

	demonID, err := pathID(r, "demonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req moveDemonRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	moved, err := h.positionService.Move(ctx, demonID, req.Position)
	if err != nil {
		h.fail(ctx, w, "move demon failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, demonToDTO(moved))
}

func (h *Handler) DeleteDemon(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDemon")
	defer span.End()

	demonID, err := pathID(r, "demonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.positionService.Remove(ctx, demonID); err != nil {
		h.fail(ctx, w, "remove demon failed", err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRequirement")
	defer span.End()

	demonID, err := pathID(r, "demonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateRequirementRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.demonService.UpdateRequirement(ctx, demonID, *req.Requirement)
	if err != nil {
		h.fail(ctx, w, "update requirement failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, demonToDTO(updated))
}

func (h *Handler) AddCreator(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddCreator")
	defer span.End()

	demonID, err := pathID(r, "demonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addCreatorRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.demonService.AddCreator(ctx, demonID, req.PlayerID); err != nil {
		h.fail(ctx, w, "add creator failed", err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) RemoveCreator(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveCreator")
	defer span.End()

	demonID, err := pathID(r, "demonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.demonService.RemoveCreator(ctx, demonID, playerID); err != nil {
		h.fail(ctx, w, "remove creator failed", err)
		return
	}

	writeNoContent(w)
}
