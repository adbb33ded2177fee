package libtri

import (
	"sort"
	"strings"

	"github.com/2x3systems/gotri/gotri"
	"github.com/pkg/errors"
)

// StraightLineSegment is a set of three or more vertices that lie on one straight line.
type StraightLineSegment struct {
	vtx   []VtxID // sorted
	index map[VtxID]struct{}
}

func NewStraightLineSegment(vtx ...VtxID) (*StraightLineSegment, error) {
	line := &StraightLineSegment{
		index: make(map[VtxID]struct{}, len(vtx)),
	}
	for _, v := range vtx {
		if _, exists := line.index[v]; !exists {
			line.index[v] = struct{}{}
			line.vtx = append(line.vtx, v)
		}
	}
	if len(line.vtx) < 3 {
		return nil, errors.Wrapf(gotri.ErrInvalidNetwork, "straight line %v has fewer than 3 distinct vertices", vtx)
	}
	sort.Slice(line.vtx, func(i, j int) bool {
		return line.vtx[i] < line.vtx[j]
	})
	return line, nil
}

// MustStraightLineSegment is NewStraightLineSegment for fixtures, panicking on error.
func MustStraightLineSegment(vtx ...VtxID) *StraightLineSegment {
	line, err := NewStraightLineSegment(vtx...)
	if err != nil {
		panic(err)
	}
	return line
}

func (line *StraightLineSegment) Contains(v VtxID) bool {
	_, exists := line.index[v]
	return exists
}

// ContainsAll returns true if every given vertex lies on this line.
func (line *StraightLineSegment) ContainsAll(vtx ...VtxID) bool {
	for _, v := range vtx {
		if _, exists := line.index[v]; !exists {
			return false
		}
	}
	return true
}

// Vertices returns a sorted copy of this line's vertices.
func (line *StraightLineSegment) Vertices() []VtxID {
	return append([]VtxID(nil), line.vtx...)
}

func (line *StraightLineSegment) NumVerts() int {
	return len(line.vtx)
}

// String renders the line as -*1* *2* *3*-
func (line *StraightLineSegment) String() string {
	buf := strings.Builder{}
	buf.WriteByte('-')
	for i, v := range line.vtx {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteByte('*')
		buf.WriteString(string(v))
		buf.WriteByte('*')
	}
	buf.WriteByte('-')
	return buf.String()
}
