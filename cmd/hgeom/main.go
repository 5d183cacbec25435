// Command hgeom generates or reads a planar point set, builds its Delaunay
// triangulation, and reports the resulting embedding. The triangulation can
// be exported as an Ipe document, rasterized to PNG, or previewed inline in
// an iTerm2 terminal.
//
// Sites come from --in (a file of "x y" lines, "-" for stdin) or from one of
// the built-in generators selected with --shape. A zero --seed picks the
// current unix nano epoch; the effective seed is always logged so any run
// can be reproduced.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/golang/geo/r2"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/msakai/hgeometry/delaunay"
	"github.com/msakai/hgeometry/ipe"
	"github.com/msakai/hgeometry/render"
	"github.com/msakai/hgeometry/sites"
)

const (
	shapeRandom = "random"
	shapeRing   = "ring"
	shapeGrid   = "grid"
)

var (
	count   = kingpin.Flag("count", "Number of sites to generate.").Short('n').Default("12").Int()
	seed    = kingpin.Flag("seed", "Generator seed; 0 uses the current unix nano epoch.").Int64()
	shape   = kingpin.Flag("shape", "Site layout: random, ring or grid.").Default(shapeRandom).Enum(shapeRandom, shapeRing, shapeGrid)
	rows    = kingpin.Flag("rows", "Grid rows (grid shape only).").Default("4").Int()
	cols    = kingpin.Flag("cols", "Grid columns (grid shape only).").Default("4").Int()
	jitter  = kingpin.Flag("jitter", "Uniform perturbation amplitude for generated sites.").Float64()
	inPath  = kingpin.Flag("in", "Read sites from this file instead of generating (\"-\" for stdin), one \"x y\" pair per line.").String()
	ipePath = kingpin.Flag("ipe", "Write the triangulation as an Ipe document to this path.").String()
	pngPath = kingpin.Flag("png", "Write the triangulation as a PNG raster to this path.").String()
	size    = kingpin.Flag("size", "Raster canvas size in pixels.").Default("800").Int()
	preview = kingpin.Flag("preview", "Print the raster inline (iTerm2 terminals).").Bool()
	faces   = kingpin.Flag("faces", "List the vertex boundary of every face.").Bool()
	mst     = kingpin.Flag("mst", "List the Euclidean minimum spanning tree edges.").Bool()
)

func main() {
	kingpin.Parse()

	pts, err := loadSites()
	kingpin.FatalIfError(err, "load sites")

	tr, err := delaunay.Triangulate(pts)
	kingpin.FatalIfError(err, "triangulate")

	g, err := tr.PlanarGraph()
	kingpin.FatalIfError(err, "embed")

	fmt.Printf("%s %d sites, %d edges, %d triangles\n",
		aurora.Green("triangulated:"), tr.NumSites(), tr.NumEdges(), tr.NumTriangles())
	fmt.Printf("%s V=%d E=%d F=%d, V-E+F=%d\n",
		aurora.Green("embedding:"), g.NumVertices(), g.NumEdges(), g.NumFaces(),
		g.NumVertices()-g.NumEdges()+g.NumFaces())

	if *faces {
		for _, f := range g.Faces() {
			ids := g.BoundaryVertices(f)
			parts := make([]string, len(ids))
			for i, v := range ids {
				parts[i] = strconv.Itoa(int(v))
			}
			fmt.Printf("  %s %s\n", aurora.Cyan(fmt.Sprintf("f%d", f)), strings.Join(parts, " "))
		}
	}

	if *mst {
		tree, total := tr.EuclideanMST()
		fmt.Printf("%s %d edges, total length %.3f\n", aurora.Green("mst:"), len(tree), total)
		for _, e := range tree {
			fmt.Printf("  %d-%d\n", e[0], e[1])
		}
	}

	if *ipePath == "" && *pngPath == "" && !*preview {
		return
	}

	page := render.TriangulationPage(tr)

	if *ipePath != "" {
		data, err := ipe.Marshal(ipe.NewFile(page))
		kingpin.FatalIfError(err, "encode ipe")
		kingpin.FatalIfError(os.WriteFile(*ipePath, data, 0o644), "write ipe")
		fmt.Printf("%s %s\n", aurora.Green("wrote:"), *ipePath)
	}

	if *pngPath != "" || *preview {
		img, err := render.Page(&page, render.WithSize(*size, *size))
		kingpin.FatalIfError(err, "render")

		path := *pngPath
		if path == "" {
			path = scratchPNG()
		}
		kingpin.FatalIfError(render.SavePNG(path, img), "write png")
		fmt.Printf("%s %s\n", aurora.Green("wrote:"), path)
		if *preview {
			imgcat.CatFile(path, os.Stdout)
		}
	}
}

// loadSites reads sites from --in when given, otherwise runs the selected
// generator with the logged seed.
func loadSites() ([]r2.Point, error) {
	if *inPath != "" {
		return readSites(*inPath)
	}

	if *jitter < 0 {
		kingpin.Fatalf("--jitter must be non-negative")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed: %d", *seed)

	opts := []sites.Option{sites.WithSeed(*seed)}
	if *jitter > 0 {
		opts = append(opts, sites.WithJitter(*jitter))
	}
	switch *shape {
	case shapeRing:
		return sites.Ring(*count, opts...)
	case shapeGrid:
		return sites.Grid(*rows, *cols, opts...)
	default:
		return sites.Random(*count, opts...)
	}
}

// readSites parses one "x y" pair per line; blank lines are skipped.
func readSites(path string) ([]r2.Point, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var pts []r2.Point
	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: want \"x y\", got %q", path, lineNo, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		pts = append(pts, r2.Point{X: x, Y: y})
	}
	return pts, scanner.Err()
}

// scratchPNG names a temporary raster for preview-only runs.
func scratchPNG() string {
	petname.NonDeterministicMode()
	return filepath.Join(os.TempDir(), "hgeom-"+petname.Generate(2, "-")+".png")
}
