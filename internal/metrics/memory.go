// Package metrics reads Go runtime memory statistics for the verbose demo
// report and the TUI dashboard.
package metrics

import (
	"fmt"
	"runtime"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by the application
	TotalAlloc  uint64 // cumulative bytes allocated
	Sys         uint64 // total bytes obtained from the OS
	NumGC       uint32 // number of completed GC cycles
	HeapObjects uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		TotalAlloc:  m.TotalAlloc,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}

// Delta returns the allocation activity between an earlier snapshot and this
// one. HeapAlloc can shrink between snapshots, so only the cumulative
// counters are differenced.
func (s MemorySnapshot) Delta(earlier MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:   s.HeapAlloc,
		TotalAlloc:  s.TotalAlloc - earlier.TotalAlloc,
		Sys:         s.Sys,
		NumGC:       s.NumGC - earlier.NumGC,
		HeapObjects: s.HeapObjects,
	}
}

// FormatBytes renders a byte count using binary units.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
