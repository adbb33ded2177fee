package libtri

import (
	"io"
	"strconv"
	"strings"

	"github.com/2x3systems/gotri/gotri"
	"github.com/pkg/errors"
)

// Region is a (base or compound) region of a structured network.
//
// A Region's boundary is a cyclic vertex sequence stored as one specific rotation.  Regions are equal iff their
// RegionIDs are equal, regardless of value or boundary.  Once published, a Region is read-only.
type Region struct {
	ID    RegionID // set of base regions this region is composed of
	Value int64    // additive quantity (an area analog)

	vtx     []VtxID
	edges   []Edge
	corners []VtxID // boundary with collinear vertices collapsed (nil until reduced)
	reduced bool
}

// NilRegion returns the null region, the result of adding regions that cannot be joined.
func NilRegion() *Region {
	return &Region{}
}

// NewRegion returns a region with the given id, value, and boundary.
//
// vtx is copied.  ErrInvalidEdge is returned if any two cyclically consecutive vertices are equal.
func NewRegion(ID RegionID, value int64, vtx []VtxID) (*Region, error) {
	R := &Region{
		ID:    ID,
		Value: value,
		vtx:   append([]VtxID(nil), vtx...),
	}
	if err := R.deriveEdges(); err != nil {
		return nil, err
	}
	return R, nil
}

// NewBaseRegion returns a base region numbered n (1..gotri.MaxRegionID).
func NewBaseRegion(n int, value int64, vtx ...VtxID) (*Region, error) {
	ID := gotri.BaseRegionID(n)
	if ID == 0 {
		return nil, errors.Wrapf(gotri.ErrBadRegionID, "region %d", n)
	}
	return NewRegion(ID, value, vtx)
}

// MustBaseRegion is NewBaseRegion for fixtures, panicking on error.
func MustBaseRegion(n int, value int64, vtx ...VtxID) *Region {
	R, err := NewBaseRegion(n, value, vtx...)
	if err != nil {
		panic(err)
	}
	return R
}

// deriveEdges forms the wrap edge (last -> first) followed by each consecutive pair.
func (R *Region) deriveEdges() error {
	N := len(R.vtx)
	R.edges = nil
	if N == 0 {
		return nil
	}

	R.edges = make([]Edge, 0, N)
	Va := R.vtx[N-1]
	for _, Vb := range R.vtx {
		e, err := NewEdge(Va, Vb)
		if err != nil {
			return errors.Wrapf(err, "region %v at vertex %q", R.ID, Vb)
		}
		R.edges = append(R.edges, e)
		Va = Vb
	}
	return nil
}

// IsNil returns true if this is the null region.
func (R *Region) IsNil() bool {
	return R == nil || R.ID == 0
}

// Equals returns true if R and other are composed of the same base regions.
func (R *Region) Equals(other *Region) bool {
	return R.ID == other.ID
}

// Edges returns the edges of R's boundary: the wrap edge first, then each consecutive pair in boundary order.
// The caller must not modify the returned slice.
func (R *Region) Edges() []Edge {
	return R.edges
}

// NumVerts returns the boundary vertex count.
func (R *Region) NumVerts() int {
	return len(R.vtx)
}

func (R *Region) RegionID() RegionID {
	return R.ID
}

func (R *Region) RegionValue() int64 {
	return R.Value
}

// Boundary returns R's boundary vertices.  The caller must not modify the returned slice.
func (R *Region) Boundary() []VtxID {
	return R.vtx
}

// Corners returns R's boundary after collinear vertices are collapsed, or the boundary itself if R has not been
// reduced by a network.
func (R *Region) Corners() []VtxID {
	if !R.reduced {
		return R.vtx
	}
	return R.corners
}

// IsTriangular returns true if R has been reduced by a network and exactly 3 corners remain.
func (R *Region) IsTriangular() bool {
	return R.reduced && len(R.corners) == 3
}

func (R *Region) GetInfo() gotri.RegionInfo {
	return gotri.RegionInfo{
		NumParts:   R.ID.NumParts(),
		NumVerts:   len(R.vtx),
		NumCorners: len(R.Corners()),
	}
}

func (R *Region) setCorners(corners []VtxID) {
	R.corners = corners
	R.reduced = true
}

// clone returns a copy of R that shares R's immutable slices but not its reduction state.
func (R *Region) clone() *Region {
	return &Region{
		ID:    R.ID,
		Value: R.Value,
		vtx:   R.vtx,
		edges: R.edges,
	}
}

// rotateToEdgeAtEnd returns a rotated copy of vtx where the first consecutive pair matching e occupies the last
// two positions.
func rotateToEdgeAtEnd(vtx []VtxID, e Edge) ([]VtxID, error) {
	N := len(vtx)
	for i := 0; i < N; i++ {
		if e.Connects(vtx[i], vtx[(i+1)%N]) {
			rotated := make([]VtxID, N)
			for k := range rotated {
				rotated[k] = vtx[(i+2+k)%N]
			}
			return rotated, nil
		}
	}
	return nil, errors.Wrapf(gotri.ErrEdgeNotFound, "edge %v", e)
}

// Merge adds R and other, returning the region enclosed by both.
//
// The null region is returned if R and other share no edge or have a base region in common.  Otherwise both
// boundaries are cut at their smallest shared edge, joined, and any resulting folds are removed.
// Neither R nor other is modified.
func (R *Region) Merge(other *Region) (*Region, error) {
	if R.IsNil() || other.IsNil() {
		return NilRegion(), nil
	}

	shared, found := Edge{}, false
	for _, ea := range R.edges {
		for _, eb := range other.edges {
			if ea == eb && (!found || ea.Compare(shared) < 0) {
				shared, found = ea, true
			}
		}
	}
	if !found || R.ID.Intersects(other.ID) {
		return NilRegion(), nil
	}

	va, err := rotateToEdgeAtEnd(R.vtx, shared)
	if err != nil {
		return nil, err
	}
	vb, err := rotateToEdgeAtEnd(other.vtx, shared)
	if err != nil {
		return nil, err
	}

	joined := make([]VtxID, 0, len(va)+len(vb)-2)
	joined = append(joined, va[:len(va)-1]...)
	joined = append(joined, vb[:len(vb)-1]...)

	// A boundary that folds away entirely encloses nothing.
	folded := RemoveFolds(joined)
	if len(folded) < 3 {
		return NilRegion(), nil
	}

	merged := &Region{
		ID:    R.ID.Union(other.ID),
		Value: R.Value + other.Value,
		vtx:   folded,
	}
	if err = merged.deriveEdges(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (R *Region) String() string {
	buf := strings.Builder{}
	R.writeTo(&buf, false)
	return buf.String()
}

// WriteAsString writes R in the form ({1, 3} =13= *1* *2* *8* *7*)
func (R *Region) WriteAsString(out io.Writer, opts gotri.PrintOpts) {
	buf := strings.Builder{}
	buf.WriteString(opts.Label)
	R.writeTo(&buf, opts.Corners)
	io.WriteString(out, buf.String())
}

func (R *Region) writeTo(buf *strings.Builder, corners bool) {
	buf.WriteByte('(')
	buf.WriteString(R.ID.String())
	buf.WriteString(" =")
	buf.WriteString(strconv.FormatInt(R.Value, 10))
	buf.WriteByte('=')
	writeVtx(buf, R.vtx)
	buf.WriteByte(')')

	if corners && R.reduced {
		buf.WriteString(" <")
		writeVtx(buf, R.corners)
		buf.WriteString(" >")
	}
}

func writeVtx(buf *strings.Builder, vtx []VtxID) {
	for _, v := range vtx {
		buf.WriteString(" *")
		buf.WriteString(string(v))
		buf.WriteByte('*')
	}
}

// NewRegionFromDef reconstructs an analyzed region previously exported with ExportDef.
func NewRegionFromDef(ID RegionID, def *gotri.RegionDef) (*Region, error) {
	R, err := NewRegion(ID, def.Value, toVtxIDs(def.Vtx))
	if err != nil {
		return nil, err
	}
	if len(def.Corners) > 0 {
		R.setCorners(toVtxIDs(def.Corners))
	}
	return R, nil
}

// ExportDef returns R's value, boundary, and corners (if reduced) as a gotri.RegionDef.
func (R *Region) ExportDef() gotri.RegionDef {
	def := gotri.RegionDef{
		Value: R.Value,
		Vtx:   fromVtxIDs(R.vtx),
	}
	if R.reduced {
		def.Corners = fromVtxIDs(R.corners)
	}
	return def
}

// AsRegion returns the given state as a *Region, copying it if needed.
func AsRegion(state gotri.RegionState) (*Region, error) {
	if R, ok := state.(*Region); ok {
		return R, nil
	}
	R, err := NewRegion(state.RegionID(), state.RegionValue(), state.Boundary())
	if err != nil {
		return nil, err
	}
	if corners := state.Corners(); corners != nil {
		R.setCorners(append([]VtxID(nil), corners...))
	}
	return R, nil
}

func toVtxIDs(strs []string) []VtxID {
	vtx := make([]VtxID, len(strs))
	for i, s := range strs {
		vtx[i] = VtxID(s)
	}
	return vtx
}

func fromVtxIDs(vtx []VtxID) []string {
	strs := make([]string, len(vtx))
	for i, v := range vtx {
		strs[i] = string(v)
	}
	return strs
}
