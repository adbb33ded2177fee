package libtri

import (
	"github.com/2x3systems/gotri/gotri"
	"github.com/pkg/errors"
)

// ValidateNetwork checks that the given regions and lines describe a well-formed planar subdivision.
//
// Every failure wraps gotri.ErrInvalidNetwork.
func ValidateNetwork(regions []*Region, lines []*StraightLineSegment) error {
	ids := make(map[RegionID]struct{}, len(regions))
	borders := make(map[Edge]int)
	directed := make(map[[2]VtxID]RegionID)

	for i, R := range regions {
		if R == nil {
			return errors.Wrapf(gotri.ErrInvalidNetwork, "region #%d is nil", i+1)
		}
		if !R.ID.IsBase() {
			return errors.Wrapf(gotri.ErrInvalidNetwork, "region %v is not a base region", R.ID)
		}
		if _, exists := ids[R.ID]; exists {
			return errors.Wrapf(gotri.ErrInvalidNetwork, "region %v appears more than once", R.ID)
		}
		ids[R.ID] = struct{}{}

		N := len(R.vtx)
		if N < 3 {
			return errors.Wrapf(gotri.ErrInvalidNetwork, "region %v has %d vertices", R.ID, N)
		}
		if hasRepeatedVtx(R.vtx) {
			return errors.Wrapf(gotri.ErrInvalidNetwork, "region %v has a repeated vertex", R.ID)
		}

		Va := R.vtx[N-1]
		for _, Vb := range R.vtx {
			e := edgeOf(Va, Vb)
			borders[e]++
			if borders[e] > 2 {
				return errors.Wrapf(gotri.ErrInvalidNetwork, "edge %v borders more than 2 regions", e)
			}

			step := [2]VtxID{Va, Vb}
			if other, exists := directed[step]; exists {
				return errors.Wrapf(gotri.ErrInvalidNetwork, "regions %v and %v both traverse %q -> %q (inconsistent winding)", other, R.ID, Va, Vb)
			}
			directed[step] = R.ID
			Va = Vb
		}
	}

	for i, line := range lines {
		if line == nil || len(line.vtx) < 3 {
			return errors.Wrapf(gotri.ErrInvalidNetwork, "straight line #%d has fewer than 3 distinct vertices", i+1)
		}
	}

	return nil
}
