package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRayIntersectsAxisAlignedBoundingBox(t *testing.T) {
	t.Parallel()

	min := mgl32.Vec3{-1, -1, -1}
	max := mgl32.Vec3{1, 1, 1}

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
		hit       bool
		t         float32
	}{
		{name: "head on", origin: mgl32.Vec3{-5, 0, 0}, direction: mgl32.Vec3{1, 0, 0}, hit: true, t: 4},
		{name: "diagonal", origin: mgl32.Vec3{-3, -3, -3}, direction: mgl32.Vec3{1, 1, 1}, hit: true, t: 2},
		{name: "from inside", origin: mgl32.Vec3{0, 0, 0}, direction: mgl32.Vec3{0, 0, 1}, hit: true, t: 1},
		{name: "behind", origin: mgl32.Vec3{-5, 0, 0}, direction: mgl32.Vec3{-1, 0, 0}},
		{name: "beside", origin: mgl32.Vec3{-5, 2, 0}, direction: mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := RayIntersectsAxisAlignedBoundingBox(tt.origin, tt.direction, min, max)

			assert.Equal(t, tt.hit, r.Hit)

			if tt.hit {
				assert.InDelta(t, tt.t, r.T, 1e-4)
				assert.True(t, tt.origin.Add(tt.direction.Mul(tt.t)).ApproxEqualThreshold(r.Point, 1e-3), "got %v", r.Point)
			}
		})
	}
}

func TestRayIntersectsTriangle(t *testing.T) {
	t.Parallel()

	tri := [3]mgl32.Vec3{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}}

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
		hit       bool
		t         float32
	}{
		{name: "from above", origin: mgl32.Vec3{2, 2, 5}, direction: mgl32.Vec3{0, 0, -1}, hit: true, t: 5},
		{name: "from below", origin: mgl32.Vec3{2, 2, -5}, direction: mgl32.Vec3{0, 0, 2}, hit: true, t: 2.5},
		{name: "outside the triangle", origin: mgl32.Vec3{8, 8, 5}, direction: mgl32.Vec3{0, 0, -1}},
		{name: "pointing away", origin: mgl32.Vec3{2, 2, 5}, direction: mgl32.Vec3{0, 0, 1}},
		{name: "parallel", origin: mgl32.Vec3{2, 2, 5}, direction: mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := RayIntersectsTriangle(tt.origin, tt.direction, tri)

			assert.Equal(t, tt.hit, r.Hit)

			if tt.hit {
				assert.InDelta(t, tt.t, r.T, 1e-4)
				assert.InDelta(t, 0, r.Point.Z(), 1e-4)
			}
		})
	}
}
