package core

// SplitDuration converts total minutes into an (hours, minutes) pair for
// display. Negative input is treated as zero.
func SplitDuration(totalMinutes int) (hours, minutes int) {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return totalMinutes / 60, totalMinutes % 60
}

// ToMinutes recombines an (hours, minutes) pair into total minutes. It is
// the exact inverse of SplitDuration for non-negative inputs.
func ToMinutes(hours, minutes int) int {
	return hours*60 + minutes
}
