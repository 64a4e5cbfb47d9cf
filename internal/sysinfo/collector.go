package sysinfo

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"sysfetch/internal/logger"
	"sysfetch/internal/netprobe"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/host"
)

// Collector assembles a Snapshot from a Provider, the environment and the
// local address probe.
type Collector struct {
	Provider Provider
	Lookup   LookupFunc
	Probe    func() string
}

// NewCollector wires the real host: gopsutil, the process environment and
// the UDP route probe.
func NewCollector() *Collector {
	return &Collector{
		Provider: Gopsutil{},
		Lookup:   OSLookup,
		Probe:    netprobe.LocalIP,
	}
}

// Collect never fails: each fact the provider cannot report is logged and
// replaced so the report degrades instead of aborting.
func (c *Collector) Collect() *Snapshot {
	start := time.Now()
	logger.SysInfo.Debug().Msg("Starting system information collection")

	s := &Snapshot{
		Username: c.env("USER"),
		Shell:    c.env("SHELL"),
		Term:     c.env("TERM"),
		Desktop:  c.desktop(),
	}

	c.collectHost(s)
	c.collectCPU(s)
	s.Memory = c.memory()
	s.Swap = c.swap()

	if c.Probe != nil {
		s.LocalIP = c.Probe()
	}
	if s.LocalIP == "" {
		s.LocalIP = Unknown
	}

	logger.SysInfo.Debug().
		Dur("duration", time.Since(start)).
		Str("hostname", s.Hostname).
		Str("os", s.OSName).
		Str("cpu_model", s.CPUBrand).
		Str("local_ip", s.LocalIP).
		Msg("System information collection completed")

	return s
}

func (c *Collector) collectHost(s *Snapshot) {
	s.Hostname, s.OSName, s.OSVersion, s.KernelVersion = Unknown, Unknown, Unknown, Unknown

	info, err := c.hostInfo()
	if err != nil {
		logger.SysInfo.Warn().Err(err).Msg("Failed to get host information")
	} else {
		s.Hostname = orUnknown(info.Hostname)
		s.OSName = orUnknown(osName(info.Platform, info.OS))
		s.OSVersion = info.PlatformVersion
		s.KernelVersion = orUnknown(info.KernelVersion)
		s.UptimeSeconds = info.Uptime
	}

	if s.Hostname == Unknown {
		if name, err := os.Hostname(); err == nil && name != "" {
			s.Hostname = name
		}
	}
}

func (c *Collector) hostInfo() (*host.InfoStat, error) {
	info, err := c.Provider.HostInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("failed to get host info: empty result")
	}
	return info, nil
}

func (c *Collector) collectCPU(s *Snapshot) {
	infos, err := c.Provider.CPUInfo()
	if err != nil {
		logger.SysInfo.Warn().Err(err).Msg("Failed to get CPU information")
		return
	}
	if len(infos) == 0 {
		logger.SysInfo.Warn().Msg("No CPU information available")
		return
	}
	s.CPUBrand = strings.TrimRightFunc(infos[0].ModelName, unicode.IsSpace)
	logger.SysInfo.Debug().
		Int("cpu_info_count", len(infos)).
		Str("model_name", s.CPUBrand).
		Msg("Got CPU model information")
}

func (c *Collector) memory() *Usage {
	vm, err := c.Provider.VirtualMemory()
	if err != nil || vm == nil {
		logger.SysInfo.Warn().Err(err).Msg("Failed to get memory information")
		return nil
	}
	logger.SysInfo.Debug().
		Str("memory_total", humanize.Bytes(vm.Total)).
		Str("memory_used", humanize.Bytes(vm.Used)).
		Float64("memory_used_percent", vm.UsedPercent).
		Msg("Got memory information")
	return &Usage{Total: vm.Total, Used: vm.Used}
}

func (c *Collector) swap() *Usage {
	sw, err := c.Provider.SwapMemory()
	if err != nil || sw == nil {
		logger.SysInfo.Warn().Err(err).Msg("Failed to get swap information")
		return nil
	}
	logger.SysInfo.Debug().
		Str("swap_total", humanize.Bytes(sw.Total)).
		Str("swap_used", humanize.Bytes(sw.Used)).
		Msg("Got swap information")
	return &Usage{Total: sw.Total, Used: sw.Used}
}

// env treats an empty value the same as an unset variable.
func (c *Collector) env(key string) string {
	lookup := c.Lookup
	if lookup == nil {
		lookup = OSLookup
	}
	v, ok := lookup(key)
	if !ok || v == "" {
		return ""
	}
	return v
}

func (c *Collector) desktop() string {
	for _, key := range DesktopEnvVars {
		if v := c.env(key); v != "" {
			return v
		}
	}
	return ""
}

// osName prefers the distribution ("ubuntu" -> "Ubuntu") over the OS family.
func osName(platform, family string) string {
	name := platform
	if name == "" {
		name = family
	}
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return Unknown
	}
	return v
}
