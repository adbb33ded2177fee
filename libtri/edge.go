package libtri

import (
	"strings"

	"github.com/2x3systems/gotri/gotri"
)

// Edge is an unordered pair of distinct vertices, stored in canonical form (Lo < Hi).
//
// Two Edges are equal iff they connect the same two vertices, so an Edge can be used directly as a map key.
type Edge struct {
	Lo VtxID
	Hi VtxID
}

// NewEdge forms the canonical Edge connecting Va and Vb.
func NewEdge(Va, Vb VtxID) (Edge, error) {
	if Va == Vb {
		return Edge{}, gotri.ErrInvalidEdge
	}
	return edgeOf(Va, Vb), nil
}

// MustEdge is NewEdge for fixtures, panicking if Va == Vb.
func MustEdge(Va, Vb VtxID) Edge {
	e, err := NewEdge(Va, Vb)
	if err != nil {
		panic(err)
	}
	return e
}

func edgeOf(Va, Vb VtxID) Edge {
	if Va < Vb {
		return Edge{Va, Vb}
	}
	return Edge{Vb, Va}
}

// Compare orders edges by Lo, then by Hi.
func (e Edge) Compare(other Edge) int {
	switch {
	case e.Lo < other.Lo:
		return -1
	case e.Lo > other.Lo:
		return 1
	case e.Hi < other.Hi:
		return -1
	case e.Hi > other.Hi:
		return 1
	}
	return 0
}

// Connects returns true if the given (ordered) pair of vertices traverses this edge in either direction.
func (e Edge) Connects(Va, Vb VtxID) bool {
	return (e.Lo == Va && e.Hi == Vb) || (e.Lo == Vb && e.Hi == Va)
}

// EdgeComparator is a gods utils.Comparator for Edge keys.
func EdgeComparator(a, b interface{}) int {
	return a.(Edge).Compare(b.(Edge))
}

func (e Edge) String() string {
	buf := strings.Builder{}
	e.writeTo(&buf)
	return buf.String()
}

func (e Edge) writeTo(buf *strings.Builder) {
	buf.WriteString("|*")
	buf.WriteString(string(e.Lo))
	buf.WriteString("* *")
	buf.WriteString(string(e.Hi))
	buf.WriteString("*|")
}
