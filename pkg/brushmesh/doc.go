// Package brushmesh reconstructs renderable meshes from convex brushes given
// only as sets of bounding planes, as stored by Quake-family map formats.
//
// A Solid's planes are intersected three at a time; intersection points
// outside the solid are rejected and the remaining points of each side are
// sorted into a ring, fan-triangulated and merged into a Mesh with per-face
// index ranges, an AABB and planar texture coordinates.
//
// Everything is a pure function of its input, so distinct solids can be
// built concurrently (see BuildAll).
package brushmesh
