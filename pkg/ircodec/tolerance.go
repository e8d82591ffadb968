package ircodec

// maxErrorPercent is the ± tolerance window every timing comparison in
// this package uses.
const maxErrorPercent = 25

// InRange reports whether value is within maxErrorPercent of target
// (inclusive bounds), i.e. target*0.75 <= value <= target*1.25.
func InRange(value, target int) bool {
	maxError := float64(maxErrorPercent) / 100
	lo := float64(target) * (1 - maxError)
	hi := float64(target) * (1 + maxError)
	v := float64(value)
	return lo <= v && v <= hi
}
