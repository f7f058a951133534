package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/physics"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/system"
	"github.com/lixenwraith/flapper/vmath"
)

var (
	secondsFlag = flag.Float64("seconds", 120, "Simulated seconds per run")
	seedFlag    = flag.Uint64("seed", 1, "Obstacle layout seed")
	jumpFlag    = flag.Int("jump-every", 30, "Jump every N ticks, 0 disables")
)

// === INTEGRATOR ACCURACY ===

// verifyIntegrator compares free fall under gravity with the closed form -g*t^2/2
// Semi-implicit Euler overshoots by g*t*dt/2, shrinking with dt
func verifyIntegrator() {
	fmt.Println("=== Integrator Accuracy (1s free fall) ===")
	fmt.Println()
	fmt.Printf("%-10s %15s %15s %12s\n", "dt", "Integrated", "Analytic", "Error")

	analytic := 0.5 * parameter.Gravity
	for _, hz := range []int{30, 60, 120, 240, 1000} {
		dt := 1.0 / float64(hz)
		k := core.Kinetic{Acceleration: vmath.Vec3{Y: parameter.Gravity}}
		for i := 0; i < hz; i++ {
			physics.Integrate(&k, dt)
		}
		fmt.Printf("%-10s %15.4f %15.4f %12.4f\n",
			fmt.Sprintf("1/%d", hz), k.Position.Y, analytic, math.Abs(k.Position.Y-analytic))
	}
	fmt.Println()
}

// === HEADLESS RUN ===

type runResult struct {
	ticks      int
	elapsed    time.Duration
	maxSpacing float64 // worst deviation from PipeGap across all ticks
	finalSpeed float64
	summary    string
}

func runHeadless(hz int, seconds float64, seed uint64, jumpEvery int) (runResult, error) {
	reg := status.NewRegistry()
	loader := asset.NewLoader(asset.FS, reg)
	world := engine.NewWorld()
	system.RegisterResources(world, loader, reg)
	sim := system.NewSimulation(world)

	manifest, err := asset.LoadManifest(asset.FS, parameter.ManifestPath)
	if err != nil {
		return runResult{}, err
	}
	if err := system.Bootstrap(world, sim.Loading, loader, manifest, vmath.NewFastRand(seed)); err != nil {
		return runResult{}, err
	}
	loader.Wait()

	dt := time.Second / time.Duration(hz)
	ticks := int(seconds * float64(hz))
	xs := make([]float64, 0, parameter.PipeCount)
	res := runResult{ticks: ticks}

	start := time.Now()
	for i := 0; i < ticks; i++ {
		sim.Tick(dt, jumpEvery > 0 && i%jumpEvery == 0)

		xs = xs[:0]
		for _, e := range world.Components.Obstacle.GetAllEntities() {
			k, _ := world.Components.Kinetic.GetComponent(e)
			xs = append(xs, k.Position.X)
		}
		sort.Float64s(xs)
		for j := 1; j < len(xs); j++ {
			res.maxSpacing = math.Max(res.maxSpacing, math.Abs(xs[j]-xs[j-1]-parameter.PipeGap))
		}
	}
	res.elapsed = time.Since(start)

	if pool := world.Components.Obstacle.GetAllEntities(); len(pool) > 0 {
		k, _ := world.Components.Kinetic.GetComponent(pool[0])
		res.finalSpeed = -k.Velocity.X
	}
	res.summary = reg.Summary()
	return res, nil
}

func main() {
	flag.Parse()

	fmt.Println("flapper Simulation Benchmark")
	fmt.Println("============================")
	fmt.Println()

	verifyIntegrator()

	fmt.Printf("=== Headless Runs (%.0fs simulated, seed %d) ===\n", *secondsFlag, *seedFlag)
	fmt.Println()
	fmt.Printf("%-8s %10s %14s %14s %16s %12s\n", "Rate", "Ticks", "Wall", "Per tick", "Spacing error", "Pipe speed")

	for _, hz := range []int{30, 60, 240} {
		res, err := runHeadless(hz, *secondsFlag, *seedFlag, *jumpFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run at %dHz: %v\n", hz, err)
			os.Exit(1)
		}
		perTick := time.Duration(0)
		if res.ticks > 0 {
			perTick = res.elapsed / time.Duration(res.ticks)
		}
		fmt.Printf("%-8s %10d %14v %14v %16.2e %12.1f\n",
			fmt.Sprintf("%dHz", hz), res.ticks, res.elapsed.Round(time.Microsecond), perTick, res.maxSpacing, res.finalSpeed)
		fmt.Printf("         %s\n", res.summary)
	}
}
