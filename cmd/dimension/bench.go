package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mirstar13/dimension-prt/bvh"
)

func newBenchCommand() *cobra.Command {
	var (
		numObjects int
		iterations int
		extent     float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the PR-tree builder over randomly placed spheres",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(1))
			objs := randomSpheres(numObjects, extent, rng)

			var min, max, total time.Duration
			for i := 0; i < iterations; i++ {
				start := time.Now()
				b := bvh.New(objs)
				elapsed := time.Since(start)
				_ = b.AABB()

				if i == 0 || elapsed < min {
					min = elapsed
				}
				if elapsed > max {
					max = elapsed
				}
				total += elapsed
			}

			avg := total / time.Duration(iterations)
			fmt.Printf("objects: %d, iterations: %d\n", numObjects, iterations)
			fmt.Printf("build time — min: %s, avg: %s, max: %s\n", min, avg, max)
			return nil
		},
	}

	cmd.Flags().IntVarP(&numObjects, "objects", "n", 10000, "number of random spheres to build a BVH over")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 5, "number of build iterations to time")
	cmd.Flags().Float64Var(&extent, "extent", 100, "half-extent of the cube spheres are scattered in")

	return cmd
}
