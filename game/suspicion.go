package game

// ClampSuspicion keeps the meter inside the configured range.
func ClampSuspicion(cfg Config, value float64) float64 {
	return clamp(value, cfg.SuspicionMin, cfg.SuspicionMax)
}

// AddSuspicion applies one answer's suspicion weight to the running meter.
// The result is always within bounds, whatever the delta.
func AddSuspicion(cfg Config, current, delta float64) float64 {
	return ClampSuspicion(cfg, current+delta)
}
