package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/pokedex-service/internal/http/handlers"
)

// NewRouter registers the API routes. Patterns carry no method so every 405
// goes through the handlers and keeps the JSON error shape.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	routes := []struct {
		pattern string
		handle  nethttp.HandlerFunc
	}{
		{"/", h.Index},
		{"/health", h.Health},
		{"/pokemon", h.ListPokemon},
		{"/pokemon/", h.PokemonByID},
	}

	mux := nethttp.NewServeMux()
	for _, rt := range routes {
		mux.HandleFunc(rt.pattern, rt.handle)
	}
	return mux
}
