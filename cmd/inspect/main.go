package main

import (
	"flag"
	"fmt"
	"os"

	"wireview/internal/config"
	"wireview/internal/mathutil"
	"wireview/internal/scene"
	"wireview/internal/view"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON or YAML scene config")
	zAngle := flag.Float64("z", 12, "z rotation in degrees")
	xAngle := flag.Float64("x", 20, "x tilt in degrees")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	shapes, err := scene.Build(cfg.Shapes)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	v := view.New(*zAngle, *xAngle)
	z, x := v.Angles()
	n := v.Normal()
	fmt.Printf("Angles: z=%.3f° x=%.3f° (stored %.6f, %.6f rad)\n", *zAngle, *xAngle, z, x)
	fmt.Printf("Normal: (%.6f, %.6f, %.6f)\n", n[0], n[1], n[2])

	b, err := v.Basis()
	if err != nil {
		fmt.Printf("Basis: %v\n", err)
	} else {
		fmt.Printf("Basis U: (%.6f, %.6f, %.6f)\n", b.U[0], b.U[1], b.U[2])
		fmt.Printf("Basis V: (%.6f, %.6f, %.6f)\n", b.V[0], b.V[1], b.V[2])
		fmt.Printf("U·V=%.2e U·N=%.2e V·N=%.2e\n", b.U.Dot(b.V), b.U.Dot(b.N), b.V.Dot(b.N))
	}

	pu, pv, err := mathutil.PlaneBasis(n, z)
	if err != nil {
		fmt.Printf("PlaneBasis: %v\n", err)
	} else {
		fmt.Printf("PlaneBasis u: (%.6f, %.6f, %.6f)\n", pu[0], pu[1], pu[2])
		fmt.Printf("PlaneBasis v: (%.6f, %.6f, %.6f)\n", pv[0], pv[1], pv[2])
	}

	for _, s := range shapes {
		pts, err := v.Project(s.EdgePoints())
		if err != nil {
			fmt.Printf("Shape %s: %v\n", s.ID(), err)
			continue
		}
		fmt.Printf("Shape %s: %d points\n", s.ID(), len(pts))
		for i, p := range pts {
			fmt.Printf("  [%2d] (%8.4f, %8.4f)\n", i, p.X, p.Y)
		}
	}
}
