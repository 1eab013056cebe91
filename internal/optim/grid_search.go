package optim

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/sim"
)

// Params lists the config fields a grid search can vary.
var Params = []string{"balls", "diameter", "width", "height", "steps"}

// Evaluator runs one configuration.
type Evaluator func(ctx context.Context, cfg *config.Config) (*sim.Result, error)

// Point is one evaluated grid cell.
type Point struct {
	Params map[string]int
	Value  float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]int
}

func NewGridSearch(params []string, ranges [][]int) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("got %d params but %d ranges", len(params), len(ranges))
	}
	for i, p := range params {
		if !slices.Contains(Params, p) {
			return nil, fmt.Errorf("unknown parameter %q (available: %v)", p, Params)
		}
		if len(ranges[i]) == 0 {
			return nil, fmt.Errorf("parameter %q has no values", p)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Search evaluates every combination on top of base and returns all
// points plus the one with the smallest metric value. Combinations the
// config rejects, such as more balls than the field holds, are skipped.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, eval Evaluator, metricName string) ([]Point, Point, error) {
	var points []Point
	best := Point{Value: math.Inf(1)}

	err := g.searchRecursive(ctx, 0, make(map[string]int), base, eval, metricName, &points, &best)
	if err != nil {
		return points, best, err
	}
	if len(points) == 0 {
		return nil, best, fmt.Errorf("no valid configuration in grid")
	}
	return points, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]int,
	base *config.Config,
	eval Evaluator,
	metricName string,
	points *[]Point,
	best *Point,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		cfg := *base
		for k, v := range current {
			apply(&cfg, k, v)
		}
		if cfg.Validate() != nil {
			return nil
		}

		result, err := eval(ctx, &cfg)
		if err != nil {
			return err
		}

		val, err := metricValue(result, metricName)
		if err != nil {
			return err
		}

		p := Point{Params: make(map[string]int, len(current)), Value: val}
		for k, v := range current {
			p.Params[k] = v
		}
		*points = append(*points, p)
		if val < best.Value {
			*best = p
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		current[paramName] = val
		if err := g.searchRecursive(ctx, depth+1, current, base, eval, metricName, points, best); err != nil {
			return err
		}
	}
	delete(current, paramName)
	return nil
}

func apply(cfg *config.Config, name string, v int) {
	switch name {
	case "balls":
		cfg.Balls = v
	case "diameter":
		cfg.Diameter = v
	case "width":
		cfg.Field.Right = cfg.Field.Left + v
	case "height":
		cfg.Field.Bottom = cfg.Field.Top + v
	case "steps":
		cfg.Steps = v
	}
}

func metricValue(r *sim.Result, name string) (float64, error) {
	if v, ok := r.Metrics[name]; ok {
		return v, nil
	}
	if name == "energy_drift" {
		return r.EnergyDrift, nil
	}
	return 0, fmt.Errorf("unknown metric %q", name)
}
