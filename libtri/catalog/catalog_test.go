package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/2x3systems/gotri/gotri"
	"github.com/2x3systems/gotri/libtri"
	"github.com/2x3systems/gotri/libtri/catalog"
	"github.com/stretchr/testify/require"
)

const splitTriangle = `
region 1 = 3 [x y m]
region 2 = 4 [x m z]
region 3 = 6 [y q m]
line [y m z]
`

func buildNetwork(t *testing.T, expr string) *libtri.StructuredNetwork {
	def, err := libtri.ParseNetwork(expr)
	require.NoError(t, err)
	net, err := def.Build(gotri.DefaultNetworkOpts)
	require.NoError(t, err)
	return net
}

func selectAll(cat gotri.Catalog, sel gotri.RegionSelector) []*libtri.Region {
	return libtri.SelectFromCatalog(cat, sel).Collect()
}

func TestBasics(t *testing.T) {
	ctx := gotri.NewCatalogContext()
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	opts := gotri.CatalogOpts{
		DbPathName: filepath.Join(t.TempDir(), "TestBasics"),
	}
	cat, err := catalog.OpenCatalog(ctx, opts)
	require.NoError(t, err)

	net := buildNetwork(t, splitTriangle)
	for _, R := range net.CompoundRegions() {
		require.True(t, cat.TryAddRegion(R))
		require.False(t, cat.TryAddRegion(R))
	}
	require.False(t, cat.TryAddRegion(libtri.NilRegion()))

	require.Equal(t, int64(3), cat.NumRegions(1))
	require.Equal(t, int64(2), cat.NumRegions(2))
	require.Equal(t, int64(1), cat.NumRegions(3))
	require.Equal(t, int64(0), cat.NumRegions(0))
	require.Equal(t, int64(0), cat.NumRegions(gotri.MaxRegionID+1))
	require.Equal(t, int64(net.NumTriangles()), cat.NumTriangles())
	require.Equal(t, net.TriangleSum(), cat.TriangleSum())

	// Select -- we should get every region we've added so far, in part count then id order
	all := selectAll(cat, gotri.DefaultRegionSelector)
	require.Len(t, all, net.NumCompound())
	for i, R := range net.CompoundRegions() {
		require.Equal(t, R.ID, all[i].ID)
		require.Equal(t, R.Value, all[i].Value)
		require.Equal(t, R.Boundary(), all[i].Boundary())
		require.Equal(t, R.Corners(), all[i].Corners())
		require.Equal(t, R.IsTriangular(), all[i].IsTriangular())
	}

	sel := gotri.DefaultRegionSelector
	sel.TriangularOnly = true
	triangles := selectAll(cat, sel)
	require.Len(t, triangles, net.NumTriangles())
	for _, R := range triangles {
		require.True(t, R.IsTriangular())
	}

	sel = gotri.DefaultRegionSelector
	sel.Min.NumParts = 2
	sel.Max.NumParts = 2
	require.Len(t, selectAll(cat, sel), 2)

	require.NoError(t, cat.Close())
	require.NoError(t, cat.Close())

	// Reopen read-only: state and regions persist
	opts.ReadOnly = true
	cat, err = catalog.OpenCatalog(ctx, opts)
	require.NoError(t, err)
	require.True(t, cat.IsReadOnly())
	require.Equal(t, net.TriangleSum(), cat.TriangleSum())
	require.Equal(t, int64(3), cat.NumRegions(1))
	require.Len(t, selectAll(cat, gotri.DefaultRegionSelector), net.NumCompound())
	require.False(t, cat.TryAddRegion(net.Regions()[0]))
}

func TestInMemory(t *testing.T) {
	ctx := gotri.NewCatalogContext()

	_, err := catalog.OpenCatalog(ctx, gotri.CatalogOpts{ReadOnly: true})
	require.ErrorIs(t, err, gotri.ErrBadCatalogParam)

	cat, err := catalog.OpenCatalog(ctx, gotri.CatalogOpts{})
	require.NoError(t, err)

	// a region that was never reduced is stored as such
	R := libtri.MustBaseRegion(1, 5, "a", "b", "c")
	require.True(t, cat.TryAddRegion(R))
	all := selectAll(cat, gotri.DefaultRegionSelector)
	require.Len(t, all, 1)
	require.False(t, all[0].IsTriangular())
	require.Equal(t, int64(0), cat.TriangleSum())

	// closing the context closes every attached catalog
	ctx.Close()
	<-ctx.Done()
	require.False(t, cat.TryAddRegion(libtri.MustBaseRegion(2, 1, "a", "c", "d")))
}

func TestStreamToCatalog(t *testing.T) {
	ctx := gotri.NewCatalogContext()
	defer ctx.Close()

	cat, err := catalog.OpenCatalog(ctx, gotri.CatalogOpts{})
	require.NoError(t, err)

	net := buildNetwork(t, splitTriangle)
	added := libtri.StreamRegions(net.CompoundRegions()).AddTo(cat, libtri.AddRegionOpts{}).PullAll()
	require.Equal(t, net.NumCompound(), added)

	// everything is already present
	added = libtri.StreamRegions(net.CompoundRegions()).AddTo(cat, libtri.AddRegionOpts{AutoClose: true}).PullAll()
	require.Equal(t, 0, added)
	require.False(t, cat.TryAddRegion(libtri.MustBaseRegion(9, 1, "a", "b", "c")))
}
