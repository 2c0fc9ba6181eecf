// Package scan drives a Goldbach comet scan: for every even target in
// a fixed interval it computes the exact ordered representation count,
// the Hardy-Littlewood prediction, and their ratio, then aggregates
// statistics by orbit class.
package scan

import (
	"fmt"

	"github.com/roach88/goldbach/internal/goldbach"
	"github.com/roach88/goldbach/internal/sieve"
)

// Config fixes one scan. All knobs are explicit: the core carries no
// process-wide constants.
type Config struct {
	// Start is the first even target 2N, at least 4.
	Start int64 `json:"start"`

	// Width is the length of the scanned interval; every even value
	// in [Start, Start+Width] is sampled.
	Width int64 `json:"width"`

	// TwinPrime is the Hardy-Littlewood twin prime constant C2.
	TwinPrime float64 `json:"twin_prime"`
}

// Sample records one even target and everything derived from it.
// Samples are immutable once computed.
type Sample struct {
	TwoN      int64          `json:"two_n"`
	N         int64          `json:"n"`
	Count     int64          `json:"count"`
	Series    float64        `json:"series"`
	Predicted float64        `json:"predicted"`
	Ratio     float64        `json:"ratio"`
	Orbit     goldbach.Orbit `json:"orbit"`
}

// OrbitStats aggregates the samples of one orbit class.
type OrbitStats struct {
	Samples    int     `json:"samples"`
	MeanRatio  float64 `json:"mean_ratio"`
	MeanSeries float64 `json:"mean_series"`
}

// Result is the outcome of one scan.
type Result struct {
	Config     Config                        `json:"config"`
	PrimeCount int                           `json:"prime_count"`
	Samples    []Sample                      `json:"samples"`
	ByOrbit    map[goldbach.Orbit]OrbitStats `json:"by_orbit"`
	MeanRatio  float64                       `json:"mean_ratio"`
}

// Run executes a scan. The sieve and prime sequence are built once and
// read-only for the rest of the run. Impossible configurations (odd or
// too-small start, non-positive width, non-positive constant) fail
// fast with an error.
func Run(cfg Config) (*Result, error) {
	if cfg.Start < 4 {
		return nil, fmt.Errorf("scan: start must be an even integer >= 4, got %d", cfg.Start)
	}
	if cfg.Start%2 != 0 {
		return nil, fmt.Errorf("scan: start must be even, got %d", cfg.Start)
	}
	if cfg.Width < 0 {
		return nil, fmt.Errorf("scan: width must be non-negative, got %d", cfg.Width)
	}
	if cfg.TwinPrime <= 0 {
		return nil, fmt.Errorf("scan: twin prime constant must be positive, got %g", cfg.TwinPrime)
	}

	limit := cfg.Start + cfg.Width
	table, err := sieve.New(limit)
	if err != nil {
		return nil, err
	}
	primes := table.Primes()

	res := &Result{
		Config:     cfg,
		PrimeCount: len(primes),
	}
	for n := cfg.Start; n <= limit; n += 2 {
		count := goldbach.CountOrdered(n, table, primes)
		series := goldbach.SingularSeries(n, primes)
		predicted := goldbach.Predict(n, cfg.TwinPrime, series)
		ratio := 0.0
		if predicted > 0 {
			ratio = float64(count) / predicted
		}
		res.Samples = append(res.Samples, Sample{
			TwoN:      n,
			N:         n / 2,
			Count:     count,
			Series:    series,
			Predicted: predicted,
			Ratio:     ratio,
			Orbit:     goldbach.ClassifyOrbit(n),
		})
	}
	res.aggregate()
	return res, nil
}

func (r *Result) aggregate() {
	type acc struct {
		n      int
		ratio  float64
		series float64
	}
	byOrbit := make(map[goldbach.Orbit]*acc)
	var ratioSum float64
	for _, s := range r.Samples {
		a := byOrbit[s.Orbit]
		if a == nil {
			a = &acc{}
			byOrbit[s.Orbit] = a
		}
		a.n++
		a.ratio += s.Ratio
		a.series += s.Series
		ratioSum += s.Ratio
	}
	r.ByOrbit = make(map[goldbach.Orbit]OrbitStats, len(byOrbit))
	for orbit, a := range byOrbit {
		r.ByOrbit[orbit] = OrbitStats{
			Samples:    a.n,
			MeanRatio:  a.ratio / float64(a.n),
			MeanSeries: a.series / float64(a.n),
		}
	}
	if len(r.Samples) > 0 {
		r.MeanRatio = ratioSum / float64(len(r.Samples))
	}
}
