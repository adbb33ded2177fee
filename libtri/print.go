package libtri

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/gotri/gotri"
)

// WriteAsString renders the network: base regions, straight lines, the edge table, compound regions,
// triangular regions, and the sum of the triangular regions' values, as selected by opts.
func (net *StructuredNetwork) WriteAsString(out io.Writer, opts gotri.PrintOpts) {
	buf := strings.Builder{}
	buf.Grow(4096)

	if len(opts.Label) > 0 {
		buf.WriteString(opts.Label)
		buf.WriteString("\n\n")
	}

	if opts.Regions {
		fmt.Fprintf(&buf, "Base regions ({id} =value= *vertices*)\ncount = %d\n\n", len(net.regions))
		for _, R := range net.regions {
			R.writeTo(&buf, false)
			buf.WriteByte('\n')
		}

		fmt.Fprintf(&buf, "\n\nMulti edge straight lines -*vertices*-\ncount = %d\n\n", len(net.lines))
		for _, line := range net.lines {
			buf.WriteString(line.String())
			buf.WriteByte('\n')
		}
		buf.WriteString("\n\n")
	}

	if opts.Edges {
		fmt.Fprintf(&buf, "edge list |*vertices*| -> {connected region id}\ncount = %d\n\n", net.edgeIndex.Size())
		for _, entry := range net.EdgeTable() {
			entry.Edge.writeTo(&buf)
			buf.WriteString(" -> ")
			for _, ID := range entry.Regions {
				buf.WriteString(ID.String())
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("\n\n")
	}

	if opts.Compound && !opts.TrianglesOnly {
		fmt.Fprintf(&buf, "Compound regions ({id} =value= *vertices*)\ncount = %d\n\n", len(net.compound))
		for _, R := range net.compound {
			R.writeTo(&buf, opts.Corners)
			buf.WriteByte('\n')
		}
		buf.WriteString("\n\n")
	}

	if opts.Compound || opts.TrianglesOnly {
		fmt.Fprintf(&buf, "Triangular Regions ({id} =value= *vertices*)\ncount = %d\n\n", len(net.triangles))
		for _, R := range net.triangles {
			R.writeTo(&buf, opts.Corners)
			buf.WriteByte('\n')
		}
		buf.WriteString("\n\n")
	}

	if !opts.SkipTotals {
		fmt.Fprintf(&buf, "Sum of all the numbers in each triangular region = %d\n", net.triSum)
	}

	io.WriteString(out, buf.String())
}

func (net *StructuredNetwork) String() string {
	buf := strings.Builder{}
	net.WriteAsString(&buf, gotri.DefaultPrintOpts)
	return buf.String()
}
