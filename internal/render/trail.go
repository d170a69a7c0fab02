package render

import "github.com/san-kum/particles/internal/config"

// LinearVariation shrinks trail sprites by mult per position, up to limit.
func LinearVariation(n int, mult float64, limit int) int {
	return min(int(mult*float64(n)), limit)
}

// PeriodicVariation is a triangle wave of period limit along the trail,
// scaled by mult and capped at limit.
func PeriodicVariation(n int, mult float64, limit int) int {
	v := (n + limit/2) % limit
	v -= limit / 2
	if v < 0 {
		v = -v
	}
	return min(int(float64(v)*mult), limit)
}

// TrailSize returns the sprite box for trail position n (1 is newest).
// Square types vary both sides, rectangle types one side only.
func TrailSize(t config.TrailConfig, sprite, n int) (w, h int) {
	var variation int
	if t.Type.Periodic() {
		variation = PeriodicVariation(n, t.VariationMult, t.VariationLimit)
	} else {
		variation = LinearVariation(n, t.VariationMult, t.VariationLimit)
	}

	size := sprite - variation
	size = max(size, t.MinSize)
	size = min(size, t.MaxSize)

	switch t.Type {
	case config.TrailLinearVertical, config.TrailPeriodicVertical:
		return sprite, size
	case config.TrailLinearHorizontal, config.TrailPeriodicHorizontal:
		return size, sprite
	default:
		return size, size
	}
}
