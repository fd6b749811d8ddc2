package grid

import "math"

const (
	// aspectIterBudget bounds the aspect ratio search.
	aspectIterBudget = 20
	// aspectTolerance is the relative error at which the search stops.
	aspectTolerance = 0.001
)

// columnsFor returns the item grid width that best packs count items of
// aspect itemAspect into a cell of aspect ratio.
func columnsFor(count int, ratio, itemAspect float64) int {
	if count <= 0 {
		return 1
	}
	c := int(math.Ceil(math.Sqrt(float64(count) * ratio / itemAspect)))
	if c < 1 {
		c = 1
	}
	if c > count {
		c = count
	}
	return c
}

// cellMinSize returns the outer space a cell needs to pack count items at
// the given cell aspect ratio.
func (e *Engine[T]) cellMinSize(count int, ratio float64) (w, h float64, columns int) {
	columns = columnsFor(count, ratio, e.itemAspect)
	rows := 1
	if count > 0 {
		rows = (count + columns - 1) / columns
	}
	w = float64(columns)*e.itemAspect + e.padding.Left + e.padding.Right
	h = float64(rows) + e.padding.Top + e.padding.Bottom
	return w, h, columns
}

// gridAspect derives the whole-grid aspect ratio that a shared cell aspect
// ratio would produce, assuming every cell best-packs its item count.
func (e *Engine[T]) gridAspect(counts [][]int, ratio float64) float64 {
	nrows := len(counts)
	if nrows == 0 {
		return 1
	}
	ncols := len(counts[0])
	if ncols == 0 {
		return 1
	}

	rowH := make([]float64, nrows)
	colW := make([]float64, ncols)
	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			w, h, _ := e.cellMinSize(counts[r][c], ratio)
			if w > colW[c] {
				colW[c] = w
			}
			if h > rowH[r] {
				rowH[r] = h
			}
		}
	}

	width := e.margin * float64(ncols-1)
	for _, w := range colW {
		width += w
	}
	height := e.margin * float64(nrows-1)
	for _, h := range rowH {
		height += h
	}
	if height <= 0 {
		return 1
	}
	return width / height
}

// solveCellAspect searches for the shared cell aspect ratio whose resulting
// whole-grid aspect ratio matches the target: double (or halve) until the
// target is bracketed, then bisect, within a fixed iteration budget. A
// search that fails to converge returns the best ratio found. The result is
// clamped to the configured cell aspect range.
func (e *Engine[T]) solveCellAspect(counts [][]int) float64 {
	target := e.targetAspect

	best := e.itemAspect
	bestErr := math.Inf(1)
	iters := 0

	// check evaluates one proposal and reports whether it is close
	// enough.
	check := func(r float64) (aspect float64, done bool) {
		iters++
		a := e.gridAspect(counts, r)
		relErr := math.Abs(a-target) / target
		if relErr < bestErr {
			best, bestErr = r, relErr
		}
		return a, relErr <= aspectTolerance
	}

	r := e.itemAspect
	a, done := check(r)
	if !done {
		var lo, hi float64
		if a < target {
			lo = r
			for iters < aspectIterBudget {
				r *= 2
				a, done = check(r)
				if done {
					break
				}
				if a >= target {
					hi = r
					break
				}
				lo = r
			}
		} else {
			hi = r
			for iters < aspectIterBudget {
				r /= 2
				a, done = check(r)
				if done {
					break
				}
				if a <= target {
					lo = r
					break
				}
				hi = r
			}
		}
		if !done && lo > 0 && hi > 0 {
			for iters < aspectIterBudget {
				mid := (lo + hi) / 2
				a, done = check(mid)
				if done {
					break
				}
				if a < target {
					lo = mid
				} else {
					hi = mid
				}
			}
		}
	}

	return e.clampAspect(best)
}

func (e *Engine[T]) clampAspect(r float64) float64 {
	if r < e.minCellAspect {
		return e.minCellAspect
	}
	if r > e.maxCellAspect {
		return e.maxCellAspect
	}
	return r
}
