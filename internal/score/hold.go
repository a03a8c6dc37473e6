package score

import "time"

// HoldDuration is how long a single lane input must stay in tolerance
// before the hit is finalized.
const HoldDuration = 250 * time.Millisecond

// Hold is the per target confirmation state: unarmed, armed since a
// timestamp, or confirmed. Leaving tolerance while armed disarms it and the
// progress is lost.
type Hold struct {
	Duration time.Duration

	armed     bool
	confirmed bool
	since     time.Duration
}

// Update feeds one frame into the hold and reports whether it is confirmed.
func (h *Hold) Update(inTolerance bool, now time.Duration) bool {
	if h.confirmed {
		return true
	}
	if !inTolerance {
		h.armed = false
		return false
	}
	if !h.armed {
		h.armed = true
		h.since = now
	}
	h.confirmed = now-h.since >= h.Duration
	return h.confirmed
}

func (h *Hold) Armed() bool {
	return h.armed
}

// Progress returns the held fraction of Duration, 0 when unarmed.
func (h *Hold) Progress(now time.Duration) float64 {
	if h.confirmed {
		return 1
	}
	if !h.armed || h.Duration <= 0 {
		return 0
	}
	p := float64(now-h.since) / float64(h.Duration)
	if p > 1 {
		return 1
	}
	return p
}
