package engine

import (
	"math/rand"
	"sort"

	"github.com/IJOL/greedypacker/internal/model"
)

// GeneticConfig holds parameters for the genetic ordering optimizer.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
	Seed           int64
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
		Seed:           42,
	}
}

// gene represents a single placement decision in the chromosome.
type gene struct {
	itemIndex int  // index into the expanded item slice
	rotated   bool // whether to present the item pre-rotated
}

// chromosome is a candidate solution: an insertion order with rotation flags.
type chromosome struct {
	genes   []gene
	fitness float64
}

// geneticOptimizer searches over item insertion orders. The guillotine
// heuristics are greedy and order-sensitive, so reordering the stream is
// often worth more than switching heuristics.
type geneticOptimizer struct {
	binWidth  int
	binHeight int
	cfg       Config
	heuristic Heuristic
	config    GeneticConfig
	items     []*model.Item
	rng       *rand.Rand
}

// OptimizeGenetic expands item quantities and runs the genetic algorithm,
// returning the packing decoded from the fittest chromosome. The run is
// deterministic for a given GeneticConfig.Seed.
func OptimizeGenetic(binWidth, binHeight int, cfg Config, h Heuristic, items []*model.Item, gc GeneticConfig) model.PackResult {
	expanded := ExpandQuantities(items)
	if len(expanded) == 0 {
		return model.PackResult{}
	}

	// Scale effort for larger problems.
	if len(expanded) > 20 {
		gc.Generations = max(gc.Generations, 150)
	}
	if len(expanded) > 50 {
		gc.Generations = max(gc.Generations, 200)
		gc.PopulationSize = max(gc.PopulationSize, 80)
	}

	ga := &geneticOptimizer{
		binWidth:  binWidth,
		binHeight: binHeight,
		cfg:       cfg,
		heuristic: h,
		config:    gc,
		items:     expanded,
		rng:       rand.New(rand.NewSource(gc.Seed)),
	}
	return ga.optimize()
}

func (g *geneticOptimizer) optimize() model.PackResult {
	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		sort.SliceStable(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		// Elitism: carry over the best individuals unchanged.
		elite := min(g.config.EliteCount, len(population))
		for i := 0; i < elite; i++ {
			newPop = append(newPop, g.copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)
			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)
			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}

		population = newPop
	}

	sort.SliceStable(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})
	return g.decode(population[0])
}

// initPopulation creates random orderings plus one greedy seed
// (largest area first) to give the search a good starting point.
func (g *geneticOptimizer) initPopulation() []chromosome {
	n := len(g.items)
	population := make([]chromosome, g.config.PopulationSize)

	for i := range population {
		genes := make([]gene, n)
		perm := g.rng.Perm(n)
		for j := 0; j < n; j++ {
			genes[j] = gene{
				itemIndex: perm[j],
				rotated:   g.cfg.Rotation && g.rng.Float64() < 0.5,
			}
		}
		population[i] = chromosome{genes: genes}
	}

	if g.config.PopulationSize > 0 {
		population[0] = g.greedyChromosome()
	}
	return population
}

func (g *geneticOptimizer) greedyChromosome() chromosome {
	n := len(g.items)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return g.items[indices[i]].Area() > g.items[indices[j]].Area()
	})

	genes := make([]gene, n)
	for i, idx := range indices {
		genes[i] = gene{itemIndex: idx}
	}
	return chromosome{genes: genes}
}

// evaluate decodes the chromosome into a packing and scores it: material
// efficiency, penalized for unplaced items and for every extra bin.
func (g *geneticOptimizer) evaluate(c chromosome) float64 {
	result := g.decode(c)
	if len(result.Bins) == 0 {
		return 0
	}

	fitness := result.TotalEfficiency()
	fitness -= float64(len(result.Unplaced)) * 0.1
	fitness -= float64(len(result.Bins)-1) * 0.05
	if fitness < 0 {
		fitness = 0
	}
	return fitness
}

// decode packs fresh copies of the items in chromosome order, first-fit
// across bins. Copies keep the engine's in-place mutation from leaking
// between evaluations.
func (g *geneticOptimizer) decode(c chromosome) model.PackResult {
	mgr := NewManager(g.binWidth, g.binHeight, g.cfg, g.heuristic, BinFirstFit)

	var unplaced []*model.Item
	for _, gn := range c.genes {
		it := g.items[gn.itemIndex].Copy()
		if gn.rotated {
			it.Rotate()
		}
		if !mgr.Insert(it) {
			unplaced = append(unplaced, it)
		}
	}
	return model.PackResult{
		Bins:     mgr.Layouts(),
		Unplaced: unplaced,
	}
}

// tournamentSelect picks the best individual from a random tournament.
func (g *geneticOptimizer) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return g.copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1) for permutation
// chromosomes, preserving relative gene order from both parents.
func (g *geneticOptimizer) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.genes)
	if n <= 2 {
		return g.copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{genes: make([]gene, n)}
	inSegment := make(map[int]bool)
	for i := point1; i <= point2; i++ {
		child.genes[i] = parent1.genes[i]
		inSegment[parent1.genes[i].itemIndex] = true
	}

	childIdx := (point2 + 1) % n
	for _, pg := range parent2.genes {
		if !inSegment[pg.itemIndex] {
			child.genes[childIdx] = pg
			childIdx = (childIdx + 1) % n
		}
	}
	return child
}

// mutate applies swap, rotation-toggle, and segment-inversion mutations.
func (g *geneticOptimizer) mutate(c *chromosome) {
	n := len(c.genes)
	if n < 2 {
		return
	}

	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	}

	if g.cfg.Rotation && g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		c.genes[i].rotated = !c.genes[i].rotated
	}

	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
			i++
			j--
		}
	}
}

func (g *geneticOptimizer) copyChromosome(c chromosome) chromosome {
	genes := make([]gene, len(c.genes))
	copy(genes, c.genes)
	return chromosome{genes: genes, fitness: c.fitness}
}
