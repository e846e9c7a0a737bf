// Package statistics aggregates per-player results over a session of hands.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is one player's outcome for a single hand.
type HandResult struct {
	HandNumber     int
	NetChips       int  // Stack after the hand minus stack before it
	BigBlind       int  // Chips per big blind; zero reports raw chips
	WentToShowdown bool // Hand was settled at showdown rather than by folds
	PotSize        int
	DealerOffset   int // Seats clockwise from the button; 0 is the button
}

// Net is the result in big blinds.
func (r HandResult) Net() float64 {
	if r.BigBlind <= 0 {
		return float64(r.NetChips)
	}
	return float64(r.NetChips) / float64(r.BigBlind)
}

// PositionStats tracks results from one seat offset.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics tracks a player's results over many hands.
type Statistics struct {
	Hands    int
	NetChips int
	SumBB    float64
	SumBB2   float64   // Sum of squares for variance
	Values   []float64 // Every result, for median and percentiles

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64 // Showdown hands, wins and losses
	NonShowdownBB   float64 // Hands settled by folds, wins and losses
	AllBB           float64

	Positions map[int]*PositionStats // Keyed by dealer offset

	MaxPotChips int
	BiggestWin  int
	BiggestLoss int
}

// Mean returns big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add records one hand.
func (s *Statistics) Add(result HandResult) {
	net := result.Net()
	s.Hands++
	s.NetChips += result.NetChips
	s.SumBB += net
	s.SumBB2 += net * net
	s.Values = append(s.Values, net)

	if result.NetChips > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += net
	} else {
		s.NonShowdownBB += net
	}
	s.AllBB += net

	if s.Positions == nil {
		s.Positions = make(map[int]*PositionStats)
	}
	ps, ok := s.Positions[result.DealerOffset]
	if !ok {
		ps = &PositionStats{}
		s.Positions[result.DealerOffset] = ps
	}
	ps.Hands++
	ps.SumBB += net
	ps.SumBB2 += net * net

	s.MaxPotChips = max(s.MaxPotChips, result.PotSize)
	s.BiggestWin = max(s.BiggestWin, result.NetChips)
	s.BiggestLoss = min(s.BiggestLoss, result.NetChips)
}

// Median returns the median result.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the interpolated value at p, from 0.0 to 1.0.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns big blinds per hand from a dealer offset.
func (s *Statistics) PositionMean(offset int) float64 {
	ps, ok := s.Positions[offset]
	if !ok || ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced reports whether showdown and fold results add up to the total.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks the aggregates are consistent with each other.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}
	positionHands := 0
	for _, ps := range s.Positions {
		positionHands += ps.Hands
	}
	if positionHands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)", positionHands, s.Hands)
	}
	return nil
}
