package slicing

import "fmt"

// TimeSlice steps a single axial slice through a dataset over a sequence of
// time steps: position i of the axial range is the slice taken at time i*dt.
// The external scheduler decides which step is requested; this type only
// computes the step values and the per-step slice.
type TimeSlice struct {
	gen   *AxisPlanes
	dt    float64
	steps []float64
}

// NewTimeSlice returns a time-stepped slicer over sliceCount positions along
// the given axis with dt seconds between steps.
func NewTimeSlice(axis, sliceCount int, dt float64) (*TimeSlice, error) {
	gen, err := NewAxisPlanes(axis, sliceCount, 0)
	if err != nil {
		return nil, err
	}
	t := &TimeSlice{gen: gen, dt: dt}
	t.updateSteps()
	return t, nil
}

// Axis returns the slicing axis index.
func (t *TimeSlice) Axis() int { return t.gen.Axis() }

// SetAxis sets the slicing axis, rejecting values outside {0, 1, 2}.
func (t *TimeSlice) SetAxis(axis int) error { return t.gen.SetAxis(axis) }

// SetPadding sets the padding fraction of the axial range.
func (t *TimeSlice) SetPadding(pad float64) { t.gen.SetPadding(pad) }

// SliceCount returns the number of time steps.
func (t *TimeSlice) SliceCount() int { return t.gen.SliceCount() }

// SetSliceCount sets the number of time steps and recomputes the step
// values. Setting the current value is a no-op.
func (t *TimeSlice) SetSliceCount(n int) {
	if t.gen.SliceCount() == n {
		return
	}
	t.gen.SetSliceCount(n)
	t.updateSteps()
}

// TimeDelta returns the interval between steps in seconds.
func (t *TimeSlice) TimeDelta() float64 { return t.dt }

// SetTimeDelta sets the interval between steps in seconds and recomputes the
// step values. Setting the current value is a no-op.
func (t *TimeSlice) SetTimeDelta(dt float64) {
	if t.dt == dt {
		return
	}
	t.dt = dt
	t.updateSteps()
}

// TimeStepValues returns the step times i*dt for i in [0, sliceCount),
// for registration with an external time scheduler. The returned slice is
// owned by the slicer; callers must not mutate it.
func (t *TimeSlice) TimeStepValues() []float64 { return t.steps }

// Slice cuts ds at the axial position of the requested step index.
// Steps outside [0, sliceCount) are rejected with ErrInvalidParameter.
func (t *TimeSlice) Slice(ds Dataset, step int) (*SlicePiece, error) {
	planes := t.gen.Planes(ds.Bounds())
	if step < 0 || step >= len(planes) {
		return nil, fmt.Errorf("%w: time step %d outside [0, %d)", ErrInvalidParameter, step, len(planes))
	}
	return cutOne(ds, planes[step:step+1])
}

func (t *TimeSlice) updateSteps() {
	count := t.gen.SliceCount()
	if count < 0 {
		count = 0
	}
	steps := make([]float64, count)
	for i := range steps {
		steps[i] = float64(i) * t.dt
	}
	t.steps = steps
}
