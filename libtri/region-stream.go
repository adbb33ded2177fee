package libtri

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/gotri/gotri"
	"github.com/plan-systems/klog"
)

type AddRegionOpts struct {
	AutoClose bool // if set, the target is closed once the stream is drained
}

// RegionStream is a stage of a region pipeline.  Each stage runs in its own goroutine and closes its Outlet when
// its source is drained.
type RegionStream struct {
	Outlet chan *Region
}

func NewRegionStream() *RegionStream {
	stream := &RegionStream{
		Outlet: make(chan *Region),
	}
	return stream
}

// StreamRegions sends each of the given regions, in order, then closes.
func StreamRegions(regions []*Region) *RegionStream {
	next := NewRegionStream()

	go func() {
		for _, R := range regions {
			next.Outlet <- R
		}
		next.Close()
	}()

	return next
}

func (stream *RegionStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *RegionStream) PushRegion(R *Region) {
	stream.Outlet <- R
}

func (stream *RegionStream) PullRegion() *Region {
	R := <-stream.Outlet
	return R
}

// PullAll drains this stream and returns the number of regions received.
func (stream *RegionStream) PullAll() int {
	count := int(0)
	for range stream.Outlet {
		count++
	}
	return count
}

// Collect drains this stream and returns every region received, in order.
func (stream *RegionStream) Collect() []*Region {
	var regions []*Region
	for R := range stream.Outlet {
		regions = append(regions, R)
	}
	return regions
}

// Print writes each region as a line "label,count,region" to out, passing regions through unchanged.
// out is closed when this stream is drained.
func (stream *RegionStream) Print(
	out io.WriteCloser,
	opts gotri.PrintOpts) *RegionStream {

	next := &RegionStream{
		Outlet: make(chan *Region, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for R := range stream.Outlet {
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
			}
			buf.WriteByte(',')

			count++
			fmt.Fprintf(&buf, "%06d,", count)
			R.writeTo(&buf, opts.Corners)
			buf.WriteByte('\n')
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- R
		}
		out.Close()
		next.Close()
	}()

	return next
}

// AddTo offers each region to target, passing along only the regions target accepted.
func (stream *RegionStream) AddTo(target gotri.RegionAdder, opts AddRegionOpts) *RegionStream {
	next := &RegionStream{
		Outlet: make(chan *Region, 1),
	}

	go func() {
		for R := range stream.Outlet {
			if target.TryAddRegion(R) {
				next.Outlet <- R
			}
		}
		if opts.AutoClose {
			if closer, ok := target.(io.Closer); ok {
				closer.Close()
			}
		}
		next.Close()
	}()

	return next
}

// DropDupes passes along only the first region seen for each RegionID.
func (stream *RegionStream) DropDupes() *RegionStream {
	return stream.AddTo(NewDropDupes(), AddRegionOpts{
		AutoClose: true,
	})
}

// Select passes along only the regions selected by sel.
func (stream *RegionStream) Select(sel gotri.RegionSelector) *RegionStream {
	next := &RegionStream{
		Outlet: make(chan *Region, 1),
	}

	go func() {
		for R := range stream.Outlet {
			if sel.SelectsRegion(R) {
				next.Outlet <- R
			}
		}
		next.Close()
	}()

	return next
}

// SelectFromCatalog streams the regions of cat selected by sel.
func SelectFromCatalog(cat gotri.Catalog, sel gotri.RegionSelector) *RegionStream {
	next := &RegionStream{
		Outlet: make(chan *Region, 1),
	}

	onHit := make(chan gotri.RegionState, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for state := range onHit {
			R, err := AsRegion(state)
			if err != nil {
				klog.Warningf("dropping catalog region %v: %v", state.RegionID(), err)
				continue
			}
			if sel.SelectsRegion(R) {
				next.Outlet <- R
			}
		}
		next.Close()
	}()

	return next
}
