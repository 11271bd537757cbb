package httpapi

import "net/http"

// GetDemonlist serves the ranked list, either live or as of ?at=.
func (h *Handler) GetDemonlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDemonlist")
	defer span.End()

	at, err := parseAt(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.overviewService.Overview(ctx, at)
	if err != nil {
		h.fail(ctx, w, "get demonlist failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSnapshots")
	defer span.End()

	ats, err := parseAtList(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshots, err := h.timeMachine.ReconstructMany(ctx, ats)
	if err != nil {
		h.fail(ctx, w, "reconstruct snapshots failed", err)
		return
	}

	items := make([]snapshotDTO, 0, len(snapshots))
	for _, snapshot := range snapshots {
		items = append(items, snapshotToDTO(snapshot))
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}
