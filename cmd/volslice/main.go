package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"volslice/internal/boxmesh"
	"volslice/pkg/config"
	"volslice/pkg/geometry"
	"volslice/pkg/slicing"
	"volslice/pkg/spatial"
)

func main() {
	// Parse command line arguments
	mode := flag.String("mode", "axis", "Slicing mode: axis, path, slide or time")
	axis := flag.Int("axis", 0, "Slicing axis index (0, 1, 2) = (x, y, z)")
	slices := flag.Int("slices", 5, "Number of slices to generate")
	pad := flag.Float64("pad", 0.01, "Padding fraction excluded from both range ends")
	dt := flag.Float64("dt", 1.0, "Time step interval in seconds (time mode)")
	step := flag.Int("step", 0, "Requested time step index (time mode)")
	loc := flag.Int("loc", 50, "Location percent along the path (slide mode)")
	backend := flag.String("backend", "", "Nearest-neighbor backend: kdtree, rtree or empty for auto")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Explicit flags win; everything else falls back to the configuration
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["slices"] {
		*slices = cfg.Slicing.SliceCount
	}
	if !set["axis"] {
		*axis = cfg.Slicing.Axis
	}
	if !set["pad"] {
		*pad = cfg.Slicing.Padding
	}
	if !set["dt"] {
		*dt = cfg.Slicing.TimeDelta
	}
	if !set["backend"] {
		*backend = cfg.Spatial.Backend
	}

	// Demonstration dataset: a 10x10x10 box
	box := boxmesh.New(geometry.Bounds{XMax: 10, YMax: 10, ZMax: 10})

	fmt.Println("================================")
	fmt.Println("VOLSLICE - GEOMETRIC SLICING OPERATORS")
	fmt.Println("================================")
	fmt.Printf("Dataset bounds: %+v\n", box.Bounds())
	fmt.Printf("Mode: %s\n\n", *mode)

	startTime := time.Now()
	switch *mode {
	case "axis":
		runAxis(box, *axis, *slices, *pad)
	case "path":
		runPath(box, *slices, cfg.Slicing.NearestNeighbor, spatial.Backend(*backend))
	case "slide":
		runSlide(box, *loc, cfg.Slicing.NearestNeighbor, spatial.Backend(*backend))
	case "time":
		runTime(box, *axis, *slices, *pad, *dt, *step)
	default:
		log.Fatalf("Unknown mode %q: want axis, path, slide or time", *mode)
	}
	fmt.Printf("\nCompleted in %.3f seconds\n", time.Since(startTime).Seconds())
}

func runAxis(ds slicing.Dataset, axis, slices int, pad float64) {
	gen, err := slicing.NewAxisPlanes(axis, slices, pad)
	if err != nil {
		log.Fatalf("Invalid axis: %v", err)
	}

	fmt.Printf("Slicing %d times along axis %d with padding %.2f...\n", slices, axis, pad)
	fmt.Printf("Axial positions: %v\n", gen.Positions(ds.Bounds()))

	var out slicing.SliceCollection
	if err := gen.Apply(ds, &out); err != nil {
		log.Fatalf("Slicing failed: %v", err)
	}
	printCollection(&out)
}

func runPath(ds slicing.Dataset, slices int, nearest bool, backend spatial.Backend) {
	points := helixPoints(64, ds.Bounds())
	gen := slicing.NewPathPlanes(slices, nearest)
	gen.SetBackend(backend)

	fmt.Printf("Slicing %d times along a %d-point helix path...\n", slices, len(points))

	var out slicing.SliceCollection
	if err := gen.Apply(points, ds, &out); err != nil {
		log.Fatalf("Slicing failed: %v", err)
	}
	printCollection(&out)
}

func runSlide(ds slicing.Dataset, loc int, nearest bool, backend spatial.Backend) {
	points := helixPoints(64, ds.Bounds())
	sel := slicing.NewSlideSlice(nearest)
	sel.SetBackend(backend)
	if err := sel.SetLocation(loc); err != nil {
		log.Fatalf("Invalid location: %v", err)
	}

	fmt.Printf("Extracting one slice at %d%% along a %d-point helix path...\n", loc, len(points))

	piece, err := sel.Slice(points, ds)
	if err != nil {
		log.Fatalf("Slicing failed: %v", err)
	}
	fmt.Printf("Slice: %d vertices, %d polygons\n", len(piece.Vertices), len(piece.Polygons))
}

func runTime(ds slicing.Dataset, axis, slices int, pad, dt float64, step int) {
	ts, err := slicing.NewTimeSlice(axis, slices, dt)
	if err != nil {
		log.Fatalf("Invalid axis: %v", err)
	}
	ts.SetPadding(pad)

	fmt.Printf("Time steps (s): %v\n", ts.TimeStepValues())
	fmt.Printf("Extracting slice for step %d...\n", step)

	piece, err := ts.Slice(ds, step)
	if err != nil {
		log.Fatalf("Slicing failed: %v", err)
	}
	fmt.Printf("Slice: %d vertices, %d polygons\n", len(piece.Vertices), len(piece.Polygons))
}

func printCollection(c *slicing.SliceCollection) {
	fmt.Printf("Produced %d slices:\n", c.Len())
	for i := 0; i < c.Len(); i++ {
		piece := c.Piece(i)
		fmt.Printf("  %s: %d vertices, %d polygons\n", c.Name(i), len(piece.Vertices), len(piece.Polygons))
	}
}

// helixPoints samples a helix spanning the box so the path modes have a
// non-trivial input path.
func helixPoints(n int, b geometry.Bounds) []r3.Vec {
	center := b.Center()
	zlo, zhi := b.Along(2)
	points := make([]r3.Vec, n)
	for i := range points {
		t := float64(i) / float64(n-1)
		angle := 4 * math.Pi * t
		points[i] = r3.Vec{
			X: center.X + 0.4*(b.XMax-b.XMin)*math.Cos(angle),
			Y: center.Y + 0.4*(b.YMax-b.YMin)*math.Sin(angle),
			Z: zlo + t*(zhi-zlo),
		}
	}
	return points
}
