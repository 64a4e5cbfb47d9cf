// Package report turns a Snapshot into the ordered lines of the fetch output.
package report

import (
	"strings"
	"unicode/utf8"

	"sysfetch/internal/format"
	"sysfetch/internal/sysinfo"

	"github.com/fatih/color"
)

type Kind int

const (
	KindHeader Kind = iota
	KindRule
	KindField
	KindNotice
	KindPalette
)

// Line is one row of the report. Color only applies to Header and Field.
type Line struct {
	Kind  Kind
	Label string
	Value string
	Color color.Attribute
}

// Field labels.
const (
	LabelOS      = "OS"
	LabelCPU     = "CPU"
	LabelKernel  = "Kernel"
	LabelMemory  = "Memory"
	LabelSwap    = "Swap"
	LabelIP      = "Ip"
	LabelUptime  = "Uptime"
	LabelShell   = "Shell"
	LabelTerm    = "Term"
	LabelDesktop = "De/Wm"
)

// NotSet is the notice shown in place of a line whose variable is missing.
func NotSet(name string) string {
	return name + " environment variable is not set."
}

// Build lays out the snapshot in display order. It handles any snapshot,
// including one with every optional value absent.
func Build(s *sysinfo.Snapshot) []Line {
	if s == nil {
		s = &sysinfo.Snapshot{}
	}
	lines := make([]Line, 0, 16)

	if s.Username != "" {
		header := s.Username + "@" + orUnknown(s.Hostname)
		lines = append(lines,
			Line{Kind: KindHeader, Value: header, Color: color.FgHiBlue},
			Line{Kind: KindRule, Value: strings.Repeat("=", utf8.RuneCountInString(header))},
		)
	} else {
		lines = append(lines, notice("USER"))
	}

	lines = append(lines, field(LabelOS, osLine(s), color.FgHiRed))
	if s.CPUBrand != "" {
		lines = append(lines, field(LabelCPU, s.CPUBrand, color.FgHiGreen))
	}
	lines = append(lines,
		field(LabelKernel, orUnknown(s.KernelVersion), color.FgHiYellow),
		field(LabelMemory, memoryLine(s.Memory), color.FgHiMagenta),
		field(LabelSwap, swapLine(s.Swap), color.FgHiCyan),
		field(LabelIP, orUnknown(s.LocalIP), color.FgHiMagenta),
		field(LabelUptime, format.Uptime(s.UptimeSeconds), color.FgHiRed),
	)

	if s.Shell != "" {
		lines = append(lines, field(LabelShell, ShellName(s.Shell), color.FgHiGreen))
	} else {
		lines = append(lines, notice("SHELL"))
	}
	if s.Term != "" {
		lines = append(lines, field(LabelTerm, s.Term, color.FgHiYellow))
	} else {
		lines = append(lines, notice("TERM"))
	}
	if s.Desktop != "" {
		lines = append(lines, field(LabelDesktop, s.Desktop, color.FgHiCyan))
	}

	return append(lines,
		Line{Kind: KindPalette, Value: format.NormalColors()},
		Line{Kind: KindPalette, Value: format.BrightColors()},
	)
}

// ShellName returns the last path segment of a shell path.
func ShellName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func field(label, value string, c color.Attribute) Line {
	return Line{Kind: KindField, Label: label, Value: value, Color: c}
}

func notice(name string) Line {
	return Line{Kind: KindNotice, Value: NotSet(name)}
}

func osLine(s *sysinfo.Snapshot) string {
	name := orUnknown(s.OSName)
	if s.OSVersion == "" || (name == sysinfo.Unknown && s.OSVersion == sysinfo.Unknown) {
		return name
	}
	return name + " " + s.OSVersion
}

// memoryLine shows free/total.
func memoryLine(u *sysinfo.Usage) string {
	if u == nil {
		return sysinfo.Unknown
	}
	return format.Fraction(u.Free(), u.Total)
}

// swapLine shows used/total.
func swapLine(u *sysinfo.Usage) string {
	if u == nil {
		return sysinfo.Unknown
	}
	return format.Fraction(u.Used, u.Total)
}

func orUnknown(v string) string {
	if v == "" {
		return sysinfo.Unknown
	}
	return v
}
