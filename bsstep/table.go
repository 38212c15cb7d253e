package bsstep

import "gonum.org/v1/gonum/mat"

// extrapTable is the Bulirsch-Stoer polynomial extrapolation tableau. Row j
// (1-indexed; row 0 is unused) holds the order-j correction term for every
// integrated body's flattened six-component (x,y,z,vx,vy,vz) state, per
// spec §4.6. It is backed by a mat.Dense so the per-row folds are plain
// slice arithmetic over RawRowView, and persists across the increasing
// substep counts n tried within a single Bulirsch-Stoer step attempt.
type extrapTable struct {
	rows *mat.Dense
	hsq  []float64 // hsq[n] = h^2 for the substep count that produced row n
	cols int
}

func newExtrapTable(maxOrder, ncols int) *extrapTable {
	return &extrapTable{
		rows: mat.NewDense(maxOrder+1, ncols, nil),
		hsq:  make([]float64, maxOrder+1),
		cols: ncols,
	}
}

func (t *extrapTable) row(n int) []float64 { return t.rows.RawRowView(n) }

// fold stores the raw substep result for n into row n and folds it down
// through rows n-1..1 using the Neville-style update of spec §4.6:
//
//	t0 = 1/(hsq[j] - hsq[n])
//	D[j] <- t0*(hsq[j+1]*D[j+1] - hsq[n]*D[j])
//
// It returns the error-estimate row D[1] (valid once n>=4, per spec §4.6)
// and the accepted-state row, which is the elementwise sum of D[1..n].
func (t *extrapTable) fold(n int, hsqN float64, raw []float64) (errRow, sumRow []float64) {
	t.hsq[n] = hsqN
	copy(t.row(n), raw)

	for j := n - 1; j >= 1; j-- {
		dj := t.row(j)
		djp1 := t.row(j + 1)
		t0 := 1 / (t.hsq[j] - t.hsq[n])
		for k := 0; k < t.cols; k++ {
			dj[k] = t0 * (t.hsq[j+1]*djp1[k] - t.hsq[n]*dj[k])
		}
	}

	sumRow = make([]float64, t.cols)
	for j := 1; j <= n; j++ {
		dj := t.row(j)
		for k := 0; k < t.cols; k++ {
			sumRow[k] += dj[k]
		}
	}
	return t.row(1), sumRow
}
