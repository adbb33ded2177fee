package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/2x3systems/gotri/gotri"
	"github.com/plan-systems/klog"
)

type cliOpts struct {
	Network       gotri.NetworkOpts
	CatalogPath   string
	TrianglesOnly bool
	Corners       bool
}

func main() {
	var (
		opts      cliOpts
		verbosity int
	)

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.IntVar(&verbosity, "v", 0, "log verbosity level")
	flag.IntVar(&opts.Network.Workers, "workers", 0, "goroutines used per expansion level (0 for one per CPU)")
	flag.BoolVar(&opts.Network.Validate, "validate", true, "reject malformed networks")
	flag.BoolVar(&opts.Network.LSMDedupe, "lsm", false, "dedupe compound regions with an in-memory LSM set")
	flag.StringVar(&opts.CatalogPath, "catalog", "", "pathname of a catalog to add every compound region to")
	flag.BoolVar(&opts.TrianglesOnly, "triangles-only", false, "print only the triangular regions and their sum")
	flag.BoolVar(&opts.Corners, "corners", false, "print the corners of each compound region")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: gotri [flags] [network.tri|network.yaml|script.py]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	fset.Set("v", strconv.Itoa(verbosity))

	pathname := flag.Arg(0)
	var err error
	switch strings.ToLower(filepath.Ext(pathname)) {
	case ".tri", ".yaml", ".yml":
		err = analyzeFile(pathname, opts, os.Stdout)
	default:
		err = go_gpython(pathname)
	}

	if err != nil {
		klog.Errorf("%v", err)
	}
	klog.Flush()

	if err != nil {
		os.Exit(1)
	}
}
