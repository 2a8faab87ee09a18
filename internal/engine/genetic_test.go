package engine

import (
	"math/rand"
	"testing"

	"github.com/IJOL/greedypacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenetic_PacksSimpleSet(t *testing.T) {
	items := []*model.Item{
		model.NewItem("a", 100, 100, 1),
		model.NewItem("b", 100, 100, 1),
		model.NewItem("c", 100, 100, 1),
		model.NewItem("d", 100, 100, 1),
	}

	result := OptimizeGenetic(500, 500, Config{}, BestAreaFit, items, DefaultGeneticConfig())

	assert.Len(t, result.Bins, 1)
	assert.Empty(t, result.Unplaced)
	assert.Equal(t, 4, result.PlacedCount())
}

func TestGenetic_Deterministic(t *testing.T) {
	build := func() []*model.Item {
		return []*model.Item{
			model.NewItem("a", 60, 40, 2),
			model.NewItem("b", 30, 30, 3),
			model.NewItem("c", 80, 20, 1),
			model.NewItem("d", 25, 55, 2),
		}
	}
	gc := DefaultGeneticConfig()
	gc.Generations = 20

	first := OptimizeGenetic(100, 100, Config{Rotation: true}, BestAreaFit, build(), gc)
	second := OptimizeGenetic(100, 100, Config{Rotation: true}, BestAreaFit, build(), gc)

	require.Equal(t, len(first.Bins), len(second.Bins))
	assert.Equal(t, len(first.Unplaced), len(second.Unplaced))
	for i := range first.Bins {
		require.Equal(t, len(first.Bins[i].Items), len(second.Bins[i].Items))
		for j, it := range first.Bins[i].Items {
			other := second.Bins[i].Items[j]
			assert.Equal(t, it.Label, other.Label)
			assert.Equal(t, it.X, other.X)
			assert.Equal(t, it.Y, other.Y)
			assert.Equal(t, it.Rotated, other.Rotated)
		}
	}
}

func TestGenetic_DoesNotMutateInput(t *testing.T) {
	items := []*model.Item{
		model.NewItem("a", 40, 40, 2),
		model.NewItem("b", 20, 60, 1),
	}
	gc := DefaultGeneticConfig()
	gc.Generations = 5

	OptimizeGenetic(100, 100, Config{Rotation: true}, BestAreaFit, items, gc)

	for _, it := range items {
		assert.False(t, it.Placed, "input item %q was mutated", it.Label)
		assert.False(t, it.Rotated)
	}
}

func TestGenetic_EmptyInput(t *testing.T) {
	result := OptimizeGenetic(100, 100, Config{}, BestAreaFit, nil, DefaultGeneticConfig())

	assert.Empty(t, result.Bins)
	assert.Empty(t, result.Unplaced)
}

func TestGenetic_KeepsGreedySeedWhenOptimal(t *testing.T) {
	// These items tile the bin exactly, so the greedy seed chromosome
	// scores a perfect fitness. Elitism never loses the best chromosome,
	// so the final packing must also be a perfect single-bin layout.
	items := []*model.Item{
		model.NewItem("a", 50, 50, 2),
		model.NewItem("b", 100, 50, 1),
	}
	gc := DefaultGeneticConfig()
	gc.Generations = 30

	result := OptimizeGenetic(100, 100, Config{}, BestAreaFit, items, gc)

	require.Len(t, result.Bins, 1)
	assert.Empty(t, result.Unplaced)
	assert.InDelta(t, 1.0, result.TotalEfficiency(), 1e-9)
}

func TestGenetic_OrderCrossoverPreservesPermutation(t *testing.T) {
	ga := &geneticOptimizer{
		config: GeneticConfig{Seed: 7},
		items:  make([]*model.Item, 8),
		rng:    rand.New(rand.NewSource(7)),
	}
	p1 := chromosome{genes: permGenes([]int{0, 1, 2, 3, 4, 5, 6, 7})}
	p2 := chromosome{genes: permGenes([]int{7, 6, 5, 4, 3, 2, 1, 0})}

	for i := 0; i < 50; i++ {
		child := ga.orderCrossover(p1, p2)
		seen := map[int]bool{}
		for _, gn := range child.genes {
			assert.False(t, seen[gn.itemIndex], "index %d repeated", gn.itemIndex)
			seen[gn.itemIndex] = true
		}
		assert.Len(t, seen, 8)
	}
}

func TestGenetic_MutatePreservesPermutation(t *testing.T) {
	ga := &geneticOptimizer{
		cfg:    Config{Rotation: true},
		config: GeneticConfig{MutationRate: 1.0},
		rng:    rand.New(rand.NewSource(11)),
	}

	c := chromosome{genes: permGenes([]int{3, 1, 4, 0, 2})}
	for i := 0; i < 50; i++ {
		ga.mutate(&c)
		seen := map[int]bool{}
		for _, gn := range c.genes {
			seen[gn.itemIndex] = true
		}
		assert.Len(t, seen, 5)
	}
}

func permGenes(order []int) []gene {
	genes := make([]gene, len(order))
	for i, idx := range order {
		genes[i] = gene{itemIndex: idx}
	}
	return genes
}
