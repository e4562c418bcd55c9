// Package sysinfo captures details about the Sprite VM serving the page.
package sysinfo

import (
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// memoryPerCPUGB approximates the Sprite memory allotment per core.
const memoryPerCPUGB = 4

// Snapshot describes the host at server start. Captured once; the page and
// the /info endpoint both render from the same immutable value.
type Snapshot struct {
	Hostname  string `json:"hostname"`
	User      string `json:"user"`
	Home      string `json:"home"`
	Cwd       string `json:"cwd"`
	PID       int    `json:"pid"`
	OS        string `json:"os"`
	Arch      string `json:"architecture"`
	Kernel    string `json:"kernel"`
	CPUCount  int    `json:"cpu_count"`
	MemoryGB  int    `json:"memory_gb"`
	GoVersion string `json:"go_version"`
}

// Capture gathers a snapshot of the current host.
func Capture() Snapshot {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "sprite"
	}
	user := os.Getenv("USER")
	if user == "" {
		user = "sprite"
	}
	home := os.Getenv("HOME")
	if home == "" {
		home = "/home/sprite"
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}

	cpus := runtime.NumCPU()
	return Snapshot{
		Hostname:  hostname,
		User:      user,
		Home:      home,
		Cwd:       cwd,
		PID:       os.Getpid(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Kernel:    kernelRelease(),
		CPUCount:  cpus,
		MemoryGB:  cpus * memoryPerCPUGB,
		GoVersion: runtime.Version(),
	}
}

// kernelRelease reads the running kernel version, falling back to the
// platform name when the proc interface is unavailable.
func kernelRelease() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return runtime.GOOS
	}
	release := strings.TrimSpace(string(data))
	if release == "" {
		return runtime.GOOS
	}
	return release
}

var groupedPrinter = message.NewPrinter(language.English)

// GroupInt formats n with thousands separators ("28471" -> "28,471").
func GroupInt(n int) string {
	return groupedPrinter.Sprintf("%d", n)
}
