// Command pokectl queries the Pokédex listing and detail operations from the
// terminal, using the same provider configuration as the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/preston-bernstein/pokedex-service/internal/config"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/server"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "pokectl",
		Output:  os.Stderr,
	})

	newService := func(ctx context.Context) pokemonService {
		return server.NewService(ctx, cfg, logger)
	}

	if err := newRootCmd(newService).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
