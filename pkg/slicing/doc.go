// Package slicing extracts 2D cross-sections from 3D datasets at
// programmatically determined locations.
//
// Plane generation and cutting are decoupled: PathPlanes and AxisPlanes
// produce ordered plane sequences (along a point path or uniformly across one
// axis of a dataset's bounding box), SliceMany applies a plane sequence to a
// dataset and collects the named pieces, and SlideSlice / TimeSlice compose
// the two for interactive single-slice and time-stepped extraction.
//
// The cut primitive itself is an external collaborator: any type satisfying
// Dataset supplies its bounds and performs the plane intersection. Cutting is
// assumed pure, so identical inputs always produce identical collections.
//
// Errors:
//
//   - ErrInvalidAxis: axis parameter outside {0, 1, 2}.
//   - ErrInvalidParameter: location or time-step parameter out of range.
//   - ErrUnsupportedShape: single-plane operation given another plane count.
package slicing
