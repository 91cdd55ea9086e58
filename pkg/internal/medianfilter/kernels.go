package medianfilter

import "sort"

// clamp folds an index into [0, n-1], duplicating the boundary sample for
// out-of-range window positions.
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// median3 computes the median of a full 3-wide window centered on i with clamped
// indices. Direct comparisons, no allocation.
func median3(values []float64, i int) float64 {
	n := len(values)
	a := values[clamp(i-1, n)]
	b := values[i]
	c := values[clamp(i+1, n)]

	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}

// median5 fills a fixed 5-slot buffer from the clamped window and bubble sorts it.
func median5(values []float64, i int) float64 {
	n := len(values)
	var buf [5]float64
	for k := 0; k < 5; k++ {
		buf[k] = values[clamp(i-2+k, n)]
	}

	for pass := 0; pass < 4; pass++ {
		for j := 0; j < 4-pass; j++ {
			if buf[j] > buf[j+1] {
				buf[j], buf[j+1] = buf[j+1], buf[j]
			}
		}
	}
	return buf[2]
}

// median7 fills a fixed 7-slot buffer from the clamped window and insertion sorts it.
func median7(values []float64, i int) float64 {
	n := len(values)
	var buf [7]float64
	for k := 0; k < 7; k++ {
		buf[k] = values[clamp(i-3+k, n)]
	}

	for j := 1; j < 7; j++ {
		v := buf[j]
		k := j - 1
		for k >= 0 && buf[k] > v {
			buf[k+1] = buf[k]
			k--
		}
		buf[k+1] = v
	}
	return buf[3]
}

// medianGeneral collects only the in-bounds samples around i into scratch, so the
// window shrinks near the edges rather than duplicating boundary values. The scratch
// buffer is owned by the calling Apply and reused across samples.
func medianGeneral(values []float64, i, radius int, scratch []float64) float64 {
	n := len(values)
	start := i - radius
	if start < 0 {
		start = 0
	}
	end := i + radius
	if end > n-1 {
		end = n - 1
	}

	filled := 0
	for j := start; j <= end; j++ {
		scratch[filled] = values[j]
		filled++
	}

	window := scratch[:filled]
	sort.Float64s(window)
	return window[filled/2]
}
