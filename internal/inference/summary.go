package inference

import (
	"bizstats/domain/core"
	domainStats "bizstats/domain/stats"

	"github.com/montanaflynn/stats"
)

// Describe computes the descriptive summary shown alongside each report
func Describe(sample domainStats.Sample) (domainStats.Summary, error) {
	data := stats.Float64Data(sample.Values())
	if len(data) == 0 {
		return domainStats.Summary{}, core.ErrInsufficientData
	}

	mean, err := data.Mean()
	if err != nil {
		return domainStats.Summary{}, err
	}

	// A single observation has no sample deviation
	var stdDev float64
	if len(data) > 1 {
		stdDev, err = data.StandardDeviationSample()
		if err != nil {
			return domainStats.Summary{}, err
		}
	}

	min, err := data.Min()
	if err != nil {
		return domainStats.Summary{}, err
	}
	max, err := data.Max()
	if err != nil {
		return domainStats.Summary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return domainStats.Summary{}, err
	}
	q25, err := percentile(data, 25)
	if err != nil {
		return domainStats.Summary{}, err
	}
	q75, err := percentile(data, 75)
	if err != nil {
		return domainStats.Summary{}, err
	}

	return domainStats.Summary{
		N:      len(data),
		Mean:   mean,
		StdDev: stdDev,
		Median: median,
		Min:    min,
		Max:    max,
		Q25:    q25,
		Q75:    q75,
	}, nil
}

// percentile interpolates like stats.Percentile but falls back to the
// nearest-rank method for samples too short to interpolate
func percentile(data stats.Float64Data, p float64) (float64, error) {
	v, err := data.Percentile(p)
	if err == nil {
		return v, nil
	}
	return data.PercentileNearestRank(p)
}

// sampleMean returns the arithmetic mean, failing on an empty sample
func sampleMean(sample domainStats.Sample) (float64, error) {
	if sample.Len() == 0 {
		return 0, core.ErrInsufficientData
	}
	return stats.Mean(sample.Values())
}
