package httpapi

import (
	"net/http"
	"sort"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams := h.teamService.List(ctx)
	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	byID := h.playerService.Positions(ctx)
	items := make([]positionDTO, 0, len(byID))
	for id, name := range byID {
		items = append(items, positionDTO{ID: id, Name: name})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweek")
	defer span.End()

	current, next := h.gameweekService.Window(ctx)
	writeSuccess(ctx, w, http.StatusOK, gameweekDTO{
		Current: current,
		Next:    next,
	})
}
