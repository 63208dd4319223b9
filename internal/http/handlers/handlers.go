package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	apppokemon "github.com/preston-bernstein/pokedex-service/internal/app/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

const pokemonPrefix = "/pokemon/"

// PokemonService is the slice of the application service the handlers call.
type PokemonService interface {
	List(ctx context.Context, q pokemon.ListQuery) (pokemon.ListResult, error)
	Detail(ctx context.Context, id string) (pokemon.Detail, error)
}

// Handler wires HTTP routes to the domain service.
type Handler struct {
	svc    PokemonService
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc PokemonService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Index answers the root path with a liveness banner and 404s anything unrouted.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": "Pokedex API running"}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// ListPokemon serves GET /pokemon.
func (h *Handler) ListPokemon(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	q, msg := parseListQuery(r.URL.Query())
	if msg != "" {
		writeError(w, r, nethttp.StatusBadRequest, msg, h.logger)
		return
	}

	result, err := h.svc.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// PokemonByID serves GET /pokemon/{id}. The id may be a number or a name.
func (h *Handler) PokemonByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	raw := strings.TrimPrefix(r.URL.EscapedPath(), pokemonPrefix)
	if raw == "" {
		h.ListPokemon(w, r)
		return
	}

	id, err := url.PathUnescape(raw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid pokemon id", h.logger)
		return
	}

	detail, err := h.svc.Detail(r.Context(), apppokemon.NormalizeID(id))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

// parseListQuery returns a non-empty message when the query is malformed.
func parseListQuery(values url.Values) (pokemon.ListQuery, string) {
	page, ok := positiveInt(values.Get("page"), apppokemon.DefaultPage)
	if !ok {
		return pokemon.ListQuery{}, "invalid page (expected positive integer)"
	}
	limit, ok := positiveInt(values.Get("limit"), apppokemon.DefaultLimit)
	if !ok {
		return pokemon.ListQuery{}, "invalid limit (expected positive integer)"
	}
	return pokemon.ListQuery{
		Generation: values.Get("generation"),
		Types:      apppokemon.SplitTypes(values.Get("type")),
		Search:     values.Get("search"),
		Sort:       pokemon.SortField(values.Get("sort")),
		Order:      pokemon.SortOrder(values.Get("order")),
		Page:       page,
		Limit:      limit,
	}, ""
}

func positiveInt(raw string, fallback int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
