package sysinfo

import (
	"os"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Unknown replaces host facts the provider could not report.
const Unknown = "unknown"

// DesktopEnvVars are checked in order; the first set one names the desktop.
var DesktopEnvVars = []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION", "GDMSESSION"}

// Snapshot is everything one run displays. Empty optional strings mean the
// value was absent.
type Snapshot struct {
	Username      string `json:"username,omitempty"`
	Hostname      string `json:"hostname"`
	OSName        string `json:"os_name"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`
	CPUBrand      string `json:"cpu_brand,omitempty"`
	Memory        *Usage `json:"memory"`
	Swap          *Usage `json:"swap"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
	LocalIP       string `json:"local_ip"`
	Shell         string `json:"shell,omitempty"`
	Term          string `json:"term,omitempty"`
	Desktop       string `json:"desktop,omitempty"`
}

// Usage is a used/total byte pair as reported by the host.
type Usage struct {
	Total uint64 `json:"total_bytes"`
	Used  uint64 `json:"used_bytes"`
}

// Free is Total-Used, clamped at zero when the source reports Used > Total.
func (u Usage) Free() uint64 {
	if u.Used > u.Total {
		return 0
	}
	return u.Total - u.Used
}

// Provider exposes raw host facts.
type Provider interface {
	HostInfo() (*host.InfoStat, error)
	VirtualMemory() (*mem.VirtualMemoryStat, error)
	SwapMemory() (*mem.SwapMemoryStat, error)
	CPUInfo() ([]cpu.InfoStat, error)
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Gopsutil reads host facts through gopsutil.
type Gopsutil struct{}

func (Gopsutil) HostInfo() (*host.InfoStat, error)              { return host.Info() }
func (Gopsutil) VirtualMemory() (*mem.VirtualMemoryStat, error) { return mem.VirtualMemory() }
func (Gopsutil) SwapMemory() (*mem.SwapMemoryStat, error)       { return mem.SwapMemory() }
func (Gopsutil) CPUInfo() ([]cpu.InfoStat, error)               { return cpu.Info() }

var _ Provider = Gopsutil{}

// OSLookup is the process environment.
var OSLookup LookupFunc = os.LookupEnv
