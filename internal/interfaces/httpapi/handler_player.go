package httpapi

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fplpulse/fpl-dashboard/internal/domain/player"
	"github.com/fplpulse/fpl-dashboard/internal/usecase"
)

type listPlayersParams struct {
	Teams     []string
	Positions []string
	MinPrice  float64 `validate:"gte=0"`
	MaxPrice  float64 `validate:"gtefield=MinPrice"`
	MinForm   float64 `validate:"gte=0"`
	MaxForm   float64 `validate:"gtefield=MinForm"`
	Search    string
	SortKey   player.SortKey
	Ascending bool
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	params, err := h.parseListPlayersParams(ctx, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players := h.playerService.List(ctx)
	players = player.Filter(players, player.FilterParams{
		Teams:     params.Teams,
		Positions: params.Positions,
		Price:     player.Range{Min: params.MinPrice, Max: params.MaxPrice},
		Form:      player.Range{Min: params.MinForm, Max: params.MaxForm},
		Name:      params.Search,
	})
	players = player.SortBy(players, params.SortKey, params.Ascending)

	shortNames := h.teamShortNames(ctx)
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p, shortNames))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	playerID, err := strconv.Atoi(strings.TrimSpace(r.PathValue("playerID")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: player id must be an integer", usecase.ErrInvalidInput))
		return
	}

	history, err := h.statsService.MatchHistory(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	shortNames := h.teamShortNames(ctx)
	items := make([]gameweekStatDTO, 0, len(history))
	for _, row := range history {
		items = append(items, gameweekStatToDTO(row, shortNames))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) parseListPlayersParams(ctx context.Context, query url.Values) (listPlayersParams, error) {
	params := listPlayersParams{
		Teams:     splitCSV(query.Get("team")),
		Positions: splitCSV(query.Get("position")),
		Search:    strings.TrimSpace(query.Get("q")),
		SortKey:   player.SortKeyTotalPoints,
	}

	var err error
	if params.MinPrice, err = parseFloatParam(query, "min_price", 0); err != nil {
		return listPlayersParams{}, err
	}
	if params.MaxPrice, err = parseFloatParam(query, "max_price", math.MaxFloat64); err != nil {
		return listPlayersParams{}, err
	}
	if params.MinForm, err = parseFloatParam(query, "min_form", 0); err != nil {
		return listPlayersParams{}, err
	}
	if params.MaxForm, err = parseFloatParam(query, "max_form", math.MaxFloat64); err != nil {
		return listPlayersParams{}, err
	}

	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		key, ok := player.ParseSortKey(raw)
		if !ok {
			return listPlayersParams{}, fmt.Errorf("%w: unsupported sort key %q", usecase.ErrInvalidInput, raw)
		}
		params.SortKey = key
	}

	switch order := strings.ToLower(strings.TrimSpace(query.Get("order"))); order {
	case "", "desc":
	case "asc":
		params.Ascending = true
	default:
		return listPlayersParams{}, fmt.Errorf("%w: unsupported order %q", usecase.ErrInvalidInput, order)
	}

	if err := h.validator.StructCtx(ctx, params); err != nil {
		return listPlayersParams{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return params, nil
}

func (h *Handler) teamShortNames(ctx context.Context) map[int]string {
	teams := h.teamService.List(ctx)
	out := make(map[int]string, len(teams))
	for _, t := range teams {
		out[t.ID] = t.ShortName
	}
	return out
}

func parseFloatParam(query url.Values, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func splitCSV(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
