package pokeapi

import "time"

const (
	providerName       = "pokeapi"
	defaultBaseURL     = "https://pokeapi.co/api/v2"
	defaultHTTPTimeout = 10 * time.Second
	// The catalog is fetched as a single page large enough to hold every entry.
	catalogPageSize = 100000
	errorBodyLimit  = 512
)
