package main

import (
	"flag"
	"runtime"

	"github.com/gekko3d/cubefield"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	count := flag.Int("count", 4000, "Number of cube instances")
	spread := flag.Float64("spread", 60, "Side of the placement volume")
	seed := flag.Int64("seed", 0, "Random seed (0 = non-reproducible)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	app := cubefield.NewAppBuilder().
		UseModule(
			cubefield.LoggingModule{Prefix: "cubefield", Debug: *debug},
			cubefield.ClientModule{
				WindowWidth:  1280,
				WindowHeight: 720,
				WindowTitle:  "Cube Field",
			},
			cubefield.TimeModule{},
			cubefield.AssetServerModule{},
			cubefield.CameraModule{Orbit: true},
			cubefield.CubeFieldModule{
				CubeSize:      1,
				InstanceCount: *count,
				Spread:        float32(*spread),
				Seed:          *seed,
			},
		).
		Build()

	app.Logger().Infof("rendering %d instances", *count)
	app.Run()
}
