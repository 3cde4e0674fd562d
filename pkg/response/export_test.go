package response

import "time"

// SetNow pins the clock used for timestamps and returns a restore func.
func SetNow(fn func() time.Time) func() {
	prev := now
	now = fn
	return func() { now = prev }
}
