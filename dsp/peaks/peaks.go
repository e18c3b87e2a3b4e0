package peaks

// Peak describes one detected local maximum.
type Peak struct {
	Index      int
	Height     float64
	Prominence float64
	LeftBase   int
	RightBase  int
}

// LocalMaxima returns the indices of all local maxima in x in ascending
// order. A plateau of equal samples that is strictly higher than both of its
// neighbours yields its middle index.
func LocalMaxima(x []float64) []int {
	var out []int

	last := len(x) - 1
	for i := 1; i < last; i++ {
		if !(x[i-1] < x[i]) {
			continue
		}

		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}

		if x[ahead] < x[i] {
			out = append(out, (i+ahead-1)/2)
			i = ahead
		}
	}

	return out
}

// Prominences computes the prominence of each index in peaks.
// Indices outside x yield zero.
func Prominences(x []float64, peaks []int) []float64 {
	out := make([]float64, len(peaks))
	for k, p := range peaks {
		if p < 0 || p >= len(x) {
			continue
		}
		prom, _, _ := prominence(x, p)
		out[k] = prom
	}
	return out
}

func prominence(x []float64, peak int) (prom float64, leftBase, rightBase int) {
	height := x[peak]

	leftMin := height
	leftBase = peak
	for i := peak; i >= 0 && x[i] <= height; i-- {
		if x[i] < leftMin {
			leftMin = x[i]
			leftBase = i
		}
	}

	rightMin := height
	rightBase = peak
	for i := peak; i < len(x) && x[i] <= height; i++ {
		if x[i] < rightMin {
			rightMin = x[i]
			rightBase = i
		}
	}

	return height - max(leftMin, rightMin), leftBase, rightBase
}

// Find returns the local maxima of x whose prominence is at least
// minProminence, in ascending index order. There is no upper bound.
func Find(x []float64, minProminence float64) []Peak {
	candidates := LocalMaxima(x)
	if len(candidates) == 0 {
		return nil
	}

	out := make([]Peak, 0, len(candidates))
	for _, idx := range candidates {
		prom, left, right := prominence(x, idx)
		if prom < minProminence {
			continue
		}
		out = append(out, Peak{
			Index:      idx,
			Height:     x[idx],
			Prominence: prom,
			LeftBase:   left,
			RightBase:  right,
		})
	}

	return out
}

// Indices extracts the sample indices of ps.
func Indices(ps []Peak) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Index
	}
	return out
}
