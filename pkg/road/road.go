package road

import "math"

// Distance is a fixed-point length in thousandths of a world unit. Offsets
// and speeds are kept in Distance so that repeated per-frame additions never
// drift and the spacing between the two segments stays exact.
type Distance int64

// Unit is one world unit.
const Unit Distance = 1000

// ToDistance rounds a world-unit value to the nearest Distance.
func ToDistance(v float64) Distance {
	return Distance(math.Round(v * float64(Unit)))
}

// Float returns d in world units.
func (d Distance) Float() float64 {
	return float64(d) / float64(Unit)
}

// Recycler moves the two segments toward the camera and swaps the one that
// has passed the visible window to just behind the other.
type Recycler struct {
	length   Distance
	half     Distance
	offsets  [2]Distance
	recycles int
}

// NewRecycler places segment 0 at the origin and segment 1 one length behind.
func NewRecycler(length float64) *Recycler {
	l := ToDistance(length)
	return &Recycler{
		length:  l,
		half:    l / 2,
		offsets: [2]Distance{0, -l},
	}
}

// Tick advances both segments by speed and recycles any segment whose offset
// is now beyond half a length. Triggers are read from the offsets as they
// stand after the advance; segment 0 is then repositioned before segment 1,
// each relative to the other's current offset. A negative speed is treated
// as zero. It reports which segments were recycled.
func (r *Recycler) Tick(speed Distance) (recycled [2]bool) {
	if speed < 0 {
		speed = 0
	}
	r.offsets[0] += speed
	r.offsets[1] += speed

	snap := r.offsets
	if snap[0] > r.half {
		r.offsets[0] = r.offsets[1] - r.length
		recycled[0] = true
	}
	if snap[1] > r.half {
		r.offsets[1] = r.offsets[0] - r.length
		recycled[1] = true
	}
	for _, ok := range recycled {
		if ok {
			r.recycles++
		}
	}
	return recycled
}

// Offsets returns both segment offsets.
func (r *Recycler) Offsets() (a, b Distance) {
	return r.offsets[0], r.offsets[1]
}

// Offset returns segment i's offset in world units.
func (r *Recycler) Offset(i int) float64 {
	return r.offsets[i].Float()
}

// Length returns the segment length.
func (r *Recycler) Length() Distance {
	return r.length
}

// Half returns the recycle threshold.
func (r *Recycler) Half() Distance {
	return r.half
}

// Spacing returns |a - b|, which always equals Length.
func (r *Recycler) Spacing() Distance {
	d := r.offsets[0] - r.offsets[1]
	if d < 0 {
		return -d
	}
	return d
}

// Recycles returns how many segment swaps have happened.
func (r *Recycler) Recycles() int {
	return r.recycles
}
