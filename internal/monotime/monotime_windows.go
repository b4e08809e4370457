//go:build windows

package monotime

import (
	"syscall"
	"time"
	"unsafe"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	queryPerformanceCounter   = kernel32.NewProc("QueryPerformanceCounter")
	queryPerformanceFrequency = kernel32.NewProc("QueryPerformanceFrequency")

	// ticks per second, read once
	frequency int64
	start     int64
)

func init() {
	if ret, _, err := queryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&frequency))); ret == 0 {
		panic(err)
	}
	start = counter()
}

func counter() int64 {
	var ctr int64
	if ret, _, err := queryPerformanceCounter.Call(uintptr(unsafe.Pointer(&ctr))); ret == 0 {
		panic(err)
	}
	return ctr
}

func now() time.Duration {
	ticks := counter() - start
	// split to avoid overflowing when multiplying by 1e9
	secs := ticks / frequency
	rem := ticks % frequency
	return time.Duration(secs)*time.Second + time.Duration(rem*int64(time.Second)/frequency)
}
