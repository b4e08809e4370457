// monotime is a clock for frame pacing and deadlines
package monotime

import "time"

// Now returns the current time more precisely for Windows targets.
// Only differences between two calls are meaningful.
func Now() time.Duration {
	return now()
}

// Since returns how long it has been since start, a value from Now
func Since(start time.Duration) time.Duration {
	return now() - start
}
