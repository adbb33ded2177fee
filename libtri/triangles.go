package libtri

import (
	"golang.org/x/sync/errgroup"
)

// reduceAll computes the corners of every compound region.
func (net *StructuredNetwork) reduceAll() error {
	var g errgroup.Group
	g.SetLimit(net.opts.Workers)
	for _, R := range net.compound {
		R := R
		g.Go(func() error {
			R.setCorners(net.reduceCollinear(R.vtx))
			return nil
		})
	}
	return g.Wait()
}

// IsTriangular returns true if R's boundary reduces to exactly 3 corners against this network's straight lines.
func (net *StructuredNetwork) IsTriangular(R *Region) bool {
	if R.IsNil() {
		return false
	}
	return len(net.reduceCollinear(R.vtx)) == 3
}

// reduceCollinear repeatedly drops the middle vertex of any three consecutive boundary vertices that lie on one
// straight line.  After each removal the scan resumes from the vertex that followed the removed one.  The scan
// stops when a full pass removes nothing or fewer than 3 vertices remain.
func (net *StructuredNetwork) reduceCollinear(vtx []VtxID) []VtxID {
	cur := append([]VtxID(nil), vtx...)
	scratch := make([]VtxID, 0, len(vtx))

	for N := len(cur); N >= 3; N = len(cur) {
		at := -1
		for i := 0; i < N; i++ {
			if net.isCollinear(cur[i], cur[(i+1)%N], cur[(i+2)%N]) {
				at = i
				break
			}
		}
		if at < 0 {
			break
		}

		scratch = scratch[:0]
		for k := 0; k < N-1; k++ {
			scratch = append(scratch, cur[(at+2+k)%N])
		}
		cur, scratch = scratch, cur
	}

	return append([]VtxID(nil), cur...)
}

func (net *StructuredNetwork) isCollinear(Va, Vb, Vc VtxID) bool {
	for _, line := range net.linesOf[Va] {
		if line.ContainsAll(Vb, Vc) {
			return true
		}
	}
	return false
}
