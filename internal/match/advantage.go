package match

// DefaultSampleInterval is the spacing of advantage samples in seconds
const DefaultSampleInterval = 60

// BuildAdvantage converts the radiant-minus-dire differential samples into
// a two-sided series. The dire side is the exact negation of the radiant
// side: the game is zero-sum, one side's lead is the other's deficit.
// A non-positive interval falls back to DefaultSampleInterval.
func BuildAdvantage(radiantSamples []int, interval int) AdvantageSeries {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}

	n := len(radiantSamples)
	s := AdvantageSeries{
		Times:   make([]int, n),
		Radiant: make([]int, n),
		Dire:    make([]int, n),
	}

	for i, v := range radiantSamples {
		s.Times[i] = i * interval
		s.Radiant[i] = v
		s.Dire[i] = -v
	}

	return s
}
