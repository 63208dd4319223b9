package pokemon

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"

	domain "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func speciesNode(name string, id int, children ...domain.EvolutionNode) domain.EvolutionNode {
	return domain.EvolutionNode{
		SpeciesName: name,
		SpeciesURL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id),
		Children:    children,
	}
}
