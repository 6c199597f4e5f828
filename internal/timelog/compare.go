package timelog

import "time"

// Workday is the expected length of a full working day.
const Workday = 7*time.Hour + 30*time.Minute

// Compare returns the signed difference between the logged total and the
// expected day length. nonzero is false when they match exactly, in which
// case there is nothing to render.
func Compare(total, expected time.Duration) (diff time.Duration, nonzero bool) {
	diff = total - expected
	return diff, diff != 0
}
