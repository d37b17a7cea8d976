package system

import (
	"fmt"
	"log"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// PrintProcessStats reports the current process's memory footprint and
// CPU time, for runs started with -stats.
func PrintProcessStats() {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Printf("[!] Could not inspect process: %v", err)
		return
	}

	if mem, err := proc.MemoryInfo(); err == nil {
		fmt.Printf("[*] Memory: %.1f MB resident\n", float64(mem.RSS)/(1024*1024))
	} else {
		log.Printf("[!] Could not read memory info: %v", err)
	}

	if times, err := proc.Times(); err == nil {
		fmt.Printf("[*] CPU time: %.2fs user, %.2fs system\n", times.User, times.System)
	} else {
		log.Printf("[!] Could not read CPU times: %v", err)
	}
}
