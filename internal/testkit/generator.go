package testkit

import (
	"math/rand"

	"goamb/domain/fuzzy"
)

// SampleGenerator produces synthetic trapezoidal samples with controllable
// spread, for power and reproducibility tests.
type SampleGenerator struct {
	rng *rand.Rand
}

// NewSampleGenerator creates a generator with a fixed seed
func NewSampleGenerator(seed int64) *SampleGenerator {
	return &SampleGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns size observations centred near centre. Core half-widths
// are drawn from [minSpread, maxSpread] and support half-widths extend the
// core by the same range, so larger spreads mean larger ambiguity.
func (g *SampleGenerator) Generate(size int, centre, minSpread, maxSpread float64) fuzzy.Sample {
	items := make([]fuzzy.Trapezoid, size)
	for i := range items {
		mid := centre + g.rng.NormFloat64()
		coreHalf := minSpread + g.rng.Float64()*(maxSpread-minSpread)
		wing := minSpread + g.rng.Float64()*(maxSpread-minSpread)
		items[i] = fuzzy.MustNew(
			mid-coreHalf-wing,
			mid-coreHalf,
			mid+coreHalf,
			mid+coreHalf+wing,
		)
	}
	sample, err := fuzzy.NewSample(items...)
	if err != nil {
		panic(err) // size > 0 is the caller's contract
	}
	return sample
}

// ExamScoresX and ExamScoresY are the reference exam-score samples used to
// benchmark the test: two groups of twenty fuzzy grades whose ambiguities
// differ enough that the null hypothesis is rejected around p = 0.002.

func ExamScoresX() fuzzy.Sample {
	return mustSample([][4]float64{
		{65, 75, 85, 85}, {35, 37, 44, 50}, {66, 70, 75, 80}, {70, 74, 80, 84},
		{65, 70, 75, 80}, {45, 50, 57, 65}, {60, 66, 70, 75}, {65, 65, 70, 76},
		{60, 65, 75, 80}, {55, 60, 66, 70}, {60, 65, 70, 74}, {30, 44, 46, 54},
		{60, 65, 75, 75}, {70, 75, 85, 85}, {44, 45, 50, 56}, {51, 56, 64, 70},
		{40, 46, 54, 60}, {55, 60, 65, 70}, {80, 85, 90, 94}, {80, 84, 90, 90},
	})
}

func ExamScoresY() fuzzy.Sample {
	return mustSample([][4]float64{
		{50, 50, 63, 75}, {39, 47, 52, 60}, {60, 70, 85, 90}, {50, 56, 64, 74},
		{39, 45, 53, 57}, {55, 60, 70, 76}, {50, 50, 57, 67}, {65, 67, 80, 87},
		{50, 50, 65, 75}, {50, 55, 64, 70}, {39, 46, 53, 56}, {19, 29, 41, 50},
		{40, 47, 52, 56}, {54, 55, 65, 76}, {59, 65, 75, 85}, {50, 52, 57, 60},
		{60, 60, 70, 80}, {50, 54, 61, 67}, {40, 46, 50, 50}, {44, 50, 56, 66},
	})
}

func mustSample(rows [][4]float64) fuzzy.Sample {
	items := make([]fuzzy.Trapezoid, len(rows))
	for i, r := range rows {
		items[i] = fuzzy.MustNew(r[0], r[1], r[2], r[3])
	}
	sample, err := fuzzy.NewSample(items...)
	if err != nil {
		panic(err)
	}
	return sample
}
