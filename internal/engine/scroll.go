package engine

import "time"

// Scroll maps run time onto a horizontal axis scrolling at Speed units per
// second. A target due now sits at HitOffset; future targets lie further
// along the axis.
type Scroll struct {
	Speed     float64
	HitOffset float64
	Behind    time.Duration // how long a target stays visible after its end
	Ahead     time.Duration // how far in the future targets become visible
}

var DefaultScroll = Scroll{
	Speed:     20,
	HitOffset: 8,
	Behind:    500 * time.Millisecond,
	Ahead:     4 * time.Second,
}

func (s Scroll) Offset(at, now time.Duration) float64 {
	return s.HitOffset + (at - now).Seconds()*s.Speed
}

func (s Scroll) Width(d time.Duration) float64 {
	return d.Seconds() * s.Speed
}

func (s Scroll) Visible(from, to, now time.Duration) bool {
	return to >= now-s.Behind && from <= now+s.Ahead
}
