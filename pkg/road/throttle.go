package road

import "github.com/golangdaddy/roadloop/pkg/config"

// Throttle holds the travel speed and moves it in fixed steps inside [0, max].
type Throttle struct {
	speed Distance
	step  Distance
	limit Distance
}

// NewThrottle creates a throttle from the drive settings.
func NewThrottle(cfg config.Drive) *Throttle {
	t := &Throttle{
		speed: ToDistance(cfg.InitialSpeed),
		step:  ToDistance(cfg.SpeedStep),
		limit: ToDistance(cfg.MaxSpeed),
	}
	t.speed = min(max(t.speed, 0), t.limit)
	return t
}

// Increase raises the speed by one step, saturating at the maximum.
func (t *Throttle) Increase() {
	t.speed = min(t.limit, t.speed+t.step)
}

// Decrease lowers the speed by one step, saturating at zero.
func (t *Throttle) Decrease() {
	t.speed = max(0, t.speed-t.step)
}

// Speed returns the current speed per frame.
func (t *Throttle) Speed() Distance {
	return t.speed
}

// Max returns the speed ceiling.
func (t *Throttle) Max() Distance {
	return t.limit
}
