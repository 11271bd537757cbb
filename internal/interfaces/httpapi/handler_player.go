package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/usecase"
)

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) FindPlayerByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindPlayerByName")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(ctx, w, listerr.InvalidInput("name query parameter is required"))
		return
	}

	item, err := h.playerService.GetByName(ctx, name)
	if err != nil {
		h.fail(ctx, w, "find player by name failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, playerID, usecase.UpdatePlayerInput{
		Banned:      req.Banned,
		LinkBanned:  req.LinkBanned,
		Nationality: req.Nationality,
		Subdivision: req.Subdivision,
	})
	if err != nil {
		h.fail(ctx, w, "update player failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) GetSubmitter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSubmitter")
	defer span.End()

	submitterID, err := pathID(r, "submitterID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.submitterService.Get(ctx, submitterID)
	if err != nil {
		h.fail(ctx, w, "get submitter failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submitterToDTO(item))
}

func (h *Handler) UpdateSubmitter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSubmitter")
	defer span.End()

	submitterID, err := pathID(r, "submitterID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateSubmitterRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.submitterService.SetBanned(ctx, submitterID, *req.Banned)
	if err != nil {
		h.fail(ctx, w, "update submitter failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submitterToDTO(updated))
}
