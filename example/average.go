package main

import "github.com/swdee/go-lidarlite"

// average accumulates the mean of a fixed size block of measurements
type average struct {
	size int
	n    int
	dist float64
	sig  float64
}

func newAverage(size int) *average {
	return &average{size: size}
}

// add folds m into the current block.  Once size measurements have been added
// it returns the block means with ok set and starts a new block.
func (a *average) add(m lidarlite.Measurement) (dist, sig float64, ok bool) {

	a.dist += float64(m.Distance)
	a.sig += float64(m.SignalStrength)
	a.n++

	if a.n < a.size {
		return 0, 0, false
	}

	dist = a.dist / float64(a.n)
	sig = a.sig / float64(a.n)

	a.n = 0
	a.dist = 0
	a.sig = 0

	return dist, sig, true
}
