// Package stats summarises registry snapshots.
package stats

import (
	"sort"

	"github.com/rayonlabs/fiber/internal/nodes"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Count         int     `json:"count"`
	TotalStake    float64 `json:"total_stake"`
	MeanStake     float64 `json:"mean_stake"`
	MedianStake   float64 `json:"median_stake"`
	StdDevStake   float64 `json:"stddev_stake"`
	MaxStake      float64 `json:"max_stake"`
	MeanIncentive float64 `json:"mean_incentive"`
	MeanTrust     float64 `json:"mean_trust"`
	// Serving counts nodes that advertise a non-zero port.
	Serving int `json:"serving"`
}

// Summarize computes stake and score statistics over nodes. An empty slice
// yields the zero Summary.
func Summarize(found []nodes.Node) Summary {
	s := Summary{Count: len(found)}
	if len(found) == 0 {
		return s
	}

	stakes := make([]float64, len(found))
	incentives := make([]float64, len(found))
	trust := make([]float64, len(found))
	for i, n := range found {
		stakes[i] = n.Stake
		incentives[i] = n.Incentive
		trust[i] = n.Trust
		if n.Port != 0 {
			s.Serving++
		}
	}

	s.TotalStake = floats.Sum(stakes)
	s.MeanStake = stat.Mean(stakes, nil)
	s.MaxStake = floats.Max(stakes)
	if len(stakes) > 1 {
		s.StdDevStake = stat.StdDev(stakes, nil)
	}
	sort.Float64s(stakes)
	s.MedianStake = stat.Quantile(0.5, stat.Empirical, stakes, nil)

	s.MeanIncentive = stat.Mean(incentives, nil)
	s.MeanTrust = stat.Mean(trust, nil)
	return s
}
