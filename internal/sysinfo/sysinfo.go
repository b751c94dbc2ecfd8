// Package sysinfo collects host, CPU, memory and disk information. Collection
// is serialized behind a package mutex since gopsutil's CPU sampling keeps
// per-call state.
package sysinfo

import (
	"fmt"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot is a point-in-time view of the host.
type Snapshot struct {
	Hostname      string     `yaml:"hostname"       json:"hostname"`
	OS            string     `yaml:"os"             json:"os"`
	Platform      string     `yaml:"platform"       json:"platform"`
	KernelVersion string     `yaml:"kernel_version" json:"kernel_version"`
	UptimeSeconds uint64     `yaml:"uptime_seconds" json:"uptime_seconds"`
	CPU           CPUInfo    `yaml:"cpu"            json:"cpu"`
	Memory        MemoryInfo `yaml:"memory"         json:"memory"`
	Disks         []DiskInfo `yaml:"disks"          json:"disks"`
}

type CPUInfo struct {
	LogicalCores  int     `yaml:"logical_cores"  json:"logical_cores"`
	PhysicalCores int     `yaml:"physical_cores" json:"physical_cores"`
	UsagePercent  float64 `yaml:"usage_percent"  json:"usage_percent"`
}

type MemoryInfo struct {
	TotalBytes     uint64  `yaml:"total_bytes"     json:"total_bytes"`
	AvailableBytes uint64  `yaml:"available_bytes" json:"available_bytes"`
	UsedBytes      uint64  `yaml:"used_bytes"      json:"used_bytes"`
	UsedPercent    float64 `yaml:"used_percent"    json:"used_percent"`
}

type DiskInfo struct {
	Mountpoint  string  `yaml:"mountpoint"   json:"mountpoint"`
	Filesystem  string  `yaml:"filesystem"   json:"filesystem"`
	TotalBytes  uint64  `yaml:"total_bytes"  json:"total_bytes"`
	FreeBytes   uint64  `yaml:"free_bytes"   json:"free_bytes"`
	UsedPercent float64 `yaml:"used_percent" json:"used_percent"`
}

var collectMu sync.Mutex

// Collect gathers a fresh Snapshot. CPU usage is sampled over a short window,
// so a call takes a few hundred milliseconds.
func Collect() (*Snapshot, error) {
	collectMu.Lock()
	defer collectMu.Unlock()

	snap := &Snapshot{Disks: []DiskInfo{}}

	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("sysinfo: host info: %w", err)
	}
	snap.Hostname = info.Hostname
	snap.OS = info.OS
	snap.Platform = info.Platform
	snap.KernelVersion = info.KernelVersion
	snap.UptimeSeconds = info.Uptime

	if logical, err := cpu.Counts(true); err == nil {
		snap.CPU.LogicalCores = logical
	}
	if physical, err := cpu.Counts(false); err == nil {
		snap.CPU.PhysicalCores = physical
	}
	if percents, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(percents) > 0 {
		snap.CPU.UsagePercent = percents[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("sysinfo: virtual memory: %w", err)
	}
	snap.Memory = MemoryInfo{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
		UsedBytes:      vm.Used,
		UsedPercent:    vm.UsedPercent,
	}

	partitions, err := disk.Partitions(false)
	if err != nil {
		// Partial snapshots are still useful, disks stay empty.
		return snap, nil
	}
	for _, p := range partitions {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		snap.Disks = append(snap.Disks, DiskInfo{
			Mountpoint:  p.Mountpoint,
			Filesystem:  p.Fstype,
			TotalBytes:  usage.Total,
			FreeBytes:   usage.Free,
			UsedPercent: usage.UsedPercent,
		})
	}

	return snap, nil
}
