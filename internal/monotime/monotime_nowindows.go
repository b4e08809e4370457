//go:build !windows

package monotime

import (
	"time"
)

var epoch = time.Now()

func now() time.Duration {
	// time.Since reads the monotonic clock reading stored in epoch
	return time.Since(epoch)
}
