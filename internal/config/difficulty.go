package config

// Next returns the tick rate after one speed-up of delta ticks per second.
// The result never drops below 1 and never exceeds Max when Max is set.
func (s SpeedConfig) Next(current, delta int) int {
	next := current + delta
	if s.Max > 0 && next > s.Max {
		next = s.Max
	}
	if next < 1 {
		next = 1
	}
	return next
}

// Capped reports whether the rate has reached the configured ceiling.
func (s SpeedConfig) Capped(current int) bool {
	return s.Max > 0 && current >= s.Max
}
