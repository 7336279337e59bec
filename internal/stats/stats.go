// Package stats aggregates integer samples (ages, quiz scores) into mean,
// mode and median.
//
// Mean and median come from github.com/montanaflynn/stats. Mode is computed
// here: that library returns no mode at all when every value is equally
// frequent, and the course reports always show one. Ties resolve to the
// smallest of the most frequent values.
package stats

import (
	"errors"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

var ErrEmpty = errors.New("no values")

type Summary struct {
	Count  int
	Mean   float64
	Mode   float64
	Median float64
}

// Summarize computes a Summary over values with the mean rounded half away
// from zero to meanPlaces decimals.
func Summarize(values []int, meanPlaces int) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmpty
	}

	data := make(mstats.Float64Data, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, err
	}
	mean, err = mstats.Round(mean, meanPlaces)
	if err != nil {
		return Summary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, err
	}
	mode, err := Mode(values)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Count: len(values), Mean: mean, Mode: float64(mode), Median: median}, nil
}

// Mode returns the most frequent value, the smallest one on ties.
func Mode(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best, bestCount := keys[0], counts[keys[0]]
	for _, k := range keys[1:] {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best, nil
}
