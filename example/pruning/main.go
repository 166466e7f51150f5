// Demonstrates the separating-axis predicates on a handful of box pairs, the
// way a broad-phase pruning pass would use them.
package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/bgeom/sat"
	"github.com/bgeom/sat/box"
)

func main() {
	world := box.AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}
	fmt.Printf("Query volume: %+v\n\n", world)

	rot45 := mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 0, 1})

	candidates := []struct {
		name string
		obb  box.OBB
	}{
		{
			name: "aligned, overlapping",
			obb:  box.FromAABB(box.AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}}),
		},
		{
			name: "aligned, touching face",
			obb:  box.FromAABB(box.AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 2, 2}}),
		},
		{
			name: "aligned, disjoint",
			obb:  box.FromAABB(box.AABB{Min: mgl64.Vec3{5, 0, 0}, Max: mgl64.Vec3{6, 2, 2}}),
		},
		{
			name: "rotated 45deg, overlapping",
			obb:  box.FromTransform(mgl64.Vec3{2.5, 1, 1}, rot45, mgl64.Vec3{0.5, 0.5, 0.5}),
		},
		{
			name: "rotated 45deg, disjoint",
			obb:  box.FromTransform(mgl64.Vec3{4, 1, 1}, rot45, mgl64.Vec3{0.5, 0.5, 0.5}),
		},
		{
			name: "degenerate (flat) overlapping",
			obb: box.OBB{
				Center: mgl64.Vec3{1, 1, 1},
				Extents: [3]mgl64.Vec3{
					{0.5, 0, 0},
					{0, 0.5, 0},
					{0, 0, 0},
				},
			},
		},
	}

	for _, c := range candidates {
		fmt.Printf("%-32s intersects=%v\n", c.name, sat.IntersectsAABBOBB(world, c.obb))
	}

	fmt.Println()

	// Oriented vs oriented: two unit cubes, the second posed with a compound
	// rotation so the verdict depends on an edge-edge cross product axis.
	a := box.FromTransform(mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent(), mgl64.Vec3{1, 1, 1})
	pose := mgl64.QuatRotate(mgl64.DegToRad(50), mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(25), mgl64.Vec3{1, 0, 0})).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(25), mgl64.Vec3{0, 0, 1}))
	b := box.FromTransform(mgl64.Vec3{0, -2, 2.5}, pose, mgl64.Vec3{1, 1, 1})

	fmt.Printf("skewed cube pair                 intersects=%v\n", sat.IntersectsOBBOBB(a, b))
	fmt.Printf("same pair, epsilon=0.2           intersects=%v (conservative: axes classified parallel)\n",
		sat.IntersectsOBBOBBEps(a, b, 0.2))
}
