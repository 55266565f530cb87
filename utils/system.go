package utils

import (
	"fmt"
	"runtime"
)

// MemUsage summarizes the heap of the running process in MiB
func MemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mib := func(b uint64) float64 { return float64(b) / (1 << 20) }
	return fmt.Sprintf("heap %.1f MiB, total allocated %.1f MiB, system %.1f MiB, %d GC cycles",
		mib(m.HeapAlloc), mib(m.TotalAlloc), mib(m.Sys), m.NumGC)
}
