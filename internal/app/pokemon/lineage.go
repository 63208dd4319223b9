package pokemon

import domain "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"

// ResolveLineage walks an evolution chain from the root, following only the
// first branch at every step. Branching chains therefore yield a single line.
func ResolveLineage(root domain.EvolutionNode) []domain.Sprite {
	line := make([]domain.Sprite, 0, 3)
	node := &root
	for {
		line = append(line, domain.Sprite{
			Name:      node.SpeciesName,
			SpriteURL: domain.ArtworkForURL(node.SpeciesURL),
		})
		if len(node.Children) == 0 {
			return line
		}
		node = &node.Children[0]
	}
}
