package roster

// pricing.go - roto auction pricing from z-score sums over 5x5 categories

import "math"

// League holds auction parameters.
type League struct {
	Teams         int
	BudgetPerTeam float64
	// HitterShare is the fraction of the total budget allocated to hitters;
	// the remainder goes to pitchers.
	HitterShare float64
}

// DefaultLeague matches a standard 12-team AL-only auction with a 69/31
// hitter/pitcher budget split.
func DefaultLeague() League {
	return League{Teams: 12, BudgetPerTeam: 260, HitterShare: 0.69}
}

// TotalBudget returns the league-wide auction budget.
func (l League) TotalBudget() float64 {
	return float64(l.Teams) * l.BudgetPerTeam
}

// HitterBudget returns the budget allocated to hitters.
func (l League) HitterBudget() float64 {
	return l.TotalBudget() * l.HitterShare
}

// PitcherBudget returns the budget allocated to pitchers.
func (l League) PitcherBudget() float64 {
	return l.TotalBudget() * (1 - l.HitterShare)
}

// category is one scoring category: how to read it from a player and whether
// lower is better (ERA, WHIP).
type category[T any] struct {
	name    string
	value   func(*T) float64
	inverse bool
}

var hitterCategories = []category[Hitter]{
	{name: "R", value: func(h *Hitter) float64 { return float64(h.R) }},
	{name: "HR", value: func(h *Hitter) float64 { return float64(h.HR) }},
	{name: "RBI", value: func(h *Hitter) float64 { return float64(h.RBI) }},
	{name: "SB", value: func(h *Hitter) float64 { return float64(h.SB) }},
	{name: "AVG", value: func(h *Hitter) float64 { return h.AVG }},
}

var pitcherCategories = []category[Pitcher]{
	{name: "W", value: func(p *Pitcher) float64 { return float64(p.W) }},
	{name: "SV", value: func(p *Pitcher) float64 { return float64(p.SV) }},
	{name: "K", value: func(p *Pitcher) float64 { return float64(p.K) }},
	{name: "ERA", value: func(p *Pitcher) float64 { return p.ERA }, inverse: true},
	{name: "WHIP", value: func(p *Pitcher) float64 { return p.WHIP }, inverse: true},
}

// Price assigns auction prices to every player in the export. A player's
// price is their share of the positive z-score mass within their pool,
// scaled to that pool's budget. Players with a non-positive z-sum price at
// zero rather than negative.
func Price(exp *Export, league League) {
	priceGroup(exp.Hitters, hitterCategories, league.HitterBudget(), func(h *Hitter, price float64) { h.Price = price })
	priceGroup(exp.Pitchers, pitcherCategories, league.PitcherBudget(), func(p *Pitcher, price float64) { p.Price = price })
}

func priceGroup[T any](players []T, categories []category[T], budget float64, set func(*T, float64)) {
	if len(players) == 0 {
		return
	}

	zTotals := make([]float64, len(players))
	for _, cat := range categories {
		values := make([]float64, len(players))
		for i := range players {
			values[i] = cat.value(&players[i])
		}
		mean := mean(values)
		stdev := safeStdev(values)

		for i, v := range values {
			z := (v - mean) / stdev
			if cat.inverse {
				z = -z
			}
			zTotals[i] += z
		}
	}

	var positiveTotal float64
	for _, z := range zTotals {
		positiveTotal += math.Max(z, 0)
	}
	if positiveTotal == 0 {
		positiveTotal = 1
	}

	for i := range players {
		set(&players[i], math.Max(zTotals[i], 0)/positiveTotal*budget)
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// safeStdev returns the sample standard deviation, falling back to 1 for
// degenerate pools (fewer than two players, or zero spread) so z-scores
// stay finite.
func safeStdev(values []float64) float64 {
	if len(values) < 2 {
		return 1
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	stdev := math.Sqrt(sum / float64(len(values)-1))
	if stdev == 0 {
		return 1
	}
	return stdev
}
