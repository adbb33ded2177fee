package main

import (
	"io"

	"github.com/2x3systems/gotri/gotri"
	"github.com/2x3systems/gotri/libtri"
	"github.com/2x3systems/gotri/libtri/catalog"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// loadNetwork reads and analyzes the network in the given .tri or .yaml file.
func loadNetwork(pathname string, opts gotri.NetworkOpts) (*libtri.StructuredNetwork, string, error) {
	def, err := libtri.LoadNetworkFile(pathname)
	if err != nil {
		return nil, "", err
	}
	net, err := def.Build(opts)
	if err != nil {
		return nil, "", errors.Wrapf(err, "analyzing %s", pathname)
	}
	return net, def.Label, nil
}

func analyzeFile(pathname string, opts cliOpts, out io.Writer) error {
	net, label, err := loadNetwork(pathname, opts.Network)
	if err != nil {
		return err
	}

	printOpts := gotri.DefaultPrintOpts
	printOpts.Label = label
	printOpts.Corners = opts.Corners
	if opts.TrianglesOnly {
		printOpts.Regions = false
		printOpts.Edges = false
		printOpts.TrianglesOnly = true
	}
	net.WriteAsString(out, printOpts)

	if len(opts.CatalogPath) > 0 {
		return addToCatalog(net, opts.CatalogPath)
	}
	return nil
}

func addToCatalog(net *libtri.StructuredNetwork, pathname string) error {
	ctx := gotri.NewCatalogContext()
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	cat, err := catalog.OpenCatalog(ctx, gotri.CatalogOpts{
		DbPathName: pathname,
	})
	if err != nil {
		return errors.Wrapf(err, "opening catalog %s", pathname)
	}

	added := libtri.StreamRegions(net.CompoundRegions()).AddTo(cat, libtri.AddRegionOpts{}).PullAll()
	klog.Infof("added %d of %d compound regions to %s (catalog holds %d triangles, sum %d)",
		added, net.NumCompound(), pathname, cat.NumTriangles(), cat.TriangleSum())
	return cat.Close()
}
