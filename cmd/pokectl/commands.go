package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	apppokemon "github.com/preston-bernstein/pokedex-service/internal/app/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

type pokemonService interface {
	List(ctx context.Context, q pokemon.ListQuery) (pokemon.ListResult, error)
	Detail(ctx context.Context, id string) (pokemon.Detail, error)
}

type serviceFactory func(ctx context.Context) pokemonService

type listFlags struct {
	generation string
	types      string
	search     string
	sort       string
	order      string
	page       int
	limit      int
}

func newRootCmd(newService serviceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "pokectl",
		Short:         "Query the Pokédex aggregator from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(newService), newDetailCmd(newService))
	return root
}

func newListCmd(newService serviceFactory) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Pokémon with optional filters, sorting and pagination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.page < 1 {
				return errors.New("--page must be a positive integer")
			}
			if flags.limit < 1 {
				return errors.New("--limit must be a positive integer")
			}
			q := pokemon.ListQuery{
				Generation: flags.generation,
				Types:      apppokemon.SplitTypes(flags.types),
				Search:     flags.search,
				Sort:       pokemon.SortField(flags.sort),
				Order:      pokemon.SortOrder(flags.order),
				Page:       flags.page,
				Limit:      flags.limit,
			}
			result, err := newService(cmd.Context()).List(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.generation, "generation", "", "generation id, e.g. 1")
	f.StringVar(&flags.types, "type", "", "comma separated types; results must match all of them")
	f.StringVar(&flags.search, "search", "", "case-insensitive name substring")
	f.StringVar(&flags.sort, "sort", string(pokemon.SortByID), "sort field: id or name")
	f.StringVar(&flags.order, "order", string(pokemon.OrderAsc), "sort order: ASC or DESC")
	f.IntVar(&flags.page, "page", apppokemon.DefaultPage, "page number, starting at 1")
	f.IntVar(&flags.limit, "limit", apppokemon.DefaultLimit, "page size")
	return cmd
}

func newDetailCmd(newService serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "detail <id-or-name>",
		Short: "Show the enriched detail document for one Pokémon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := apppokemon.NormalizeID(args[0])
			if id == "" {
				return errors.New("id must not be empty")
			}
			detail, err := newService(cmd.Context()).Detail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), detail)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
