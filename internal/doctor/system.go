package doctor

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemInfo summarizes the host for the report.
type SystemInfo struct {
	OS              string
	Platform        string
	PlatformVersion string
	Arch            string
	CPUs            int
	Memory          uint64
}

// DiskInfo is free space for the workspace volume.
type DiskInfo struct {
	Free  uint64
	Total uint64
}

// HostSystem reads platform information from the OS. CPU and memory are
// left zero when they cannot be read.
func HostSystem() (SystemInfo, error) {
	info, err := host.Info()
	if err != nil {
		return SystemInfo{}, err
	}
	sys := SystemInfo{
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		Arch:            info.KernelArch,
	}

	if n, err := cpu.Counts(true); err == nil {
		sys.CPUs = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		sys.Memory = vm.Total
	}
	return sys, nil
}

func (s SystemInfo) String() string {
	out := fmt.Sprintf("%s %s %s (%s)", s.OS, s.Platform, s.PlatformVersion, s.Arch)
	if s.CPUs > 0 {
		out += fmt.Sprintf(", %d CPUs", s.CPUs)
	}
	if s.Memory > 0 {
		out += ", " + FormatBytes(s.Memory) + " RAM"
	}
	return out
}

// HostDisk reads usage for the volume holding path.
func HostDisk(path string) (DiskInfo, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return DiskInfo{}, err
	}
	return DiskInfo{Free: usage.Free, Total: usage.Total}, nil
}

func (c *Checker) systemResults() []Result {
	var results []Result

	if c.System != nil {
		if info, err := c.System(); err == nil {
			results = append(results, Result{
				Name:    "system",
				OK:      true,
				Info:    true,
				Message: info.String(),
			})
		}
	}

	if c.Disk != nil && c.DiskPath != "" {
		if usage, err := c.Disk(c.DiskPath); err == nil {
			results = append(results, Result{
				Name:    "disk",
				OK:      true,
				Info:    true,
				Message: fmt.Sprintf("%s free of %s at %s", FormatBytes(usage.Free), FormatBytes(usage.Total), c.DiskPath),
			})
		}
	}

	return results
}

// FormatBytes formats bytes to a human-readable string.
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
