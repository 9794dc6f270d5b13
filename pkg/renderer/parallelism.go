package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// HardwareParallelism returns the number of logical CPUs, never less than 1
func HardwareParallelism() int {
	if count, err := cpu.Counts(true); err == nil && count > 0 {
		return count
	}
	return max(1, runtime.NumCPU())
}
