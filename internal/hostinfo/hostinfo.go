// Package hostinfo answers the "what box am I on" questions via gopsutil,
// so the same queries work across linux, darwin and windows.
package hostinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
)

// Report bundles the host facts an analyst usually wants in one shot.
type Report struct {
	Hostname    string
	CPUCores    int
	CPUSpeedMHz float64
	OSRelease   string
	Processes   uint64
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hostname: %s\n", r.Hostname)
	fmt.Fprintf(&b, "CPU cores: %d\n", r.CPUCores)
	fmt.Fprintf(&b, "CPU speed: %.0f MHz\n", r.CPUSpeedMHz)
	fmt.Fprintf(&b, "OS release: %s\n", r.OSRelease)
	fmt.Fprintf(&b, "Processes: %d\n", r.Processes)
	return b.String()
}

// Hostname reports the machine hostname.
func Hostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}

// CPUCores reports the number of logical CPUs.
func CPUCores(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

// CPUSpeedMHz reports the advertised clock of the first CPU.
func CPUSpeedMHz(ctx context.Context) (float64, error) {
	stats, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	if len(stats) == 0 {
		return 0, errors.New("hostinfo: no cpu info available")
	}
	return stats[0].Mhz, nil
}

// OSRelease reports the kernel release string.
func OSRelease(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	return info.KernelVersion, nil
}

// ProcessCount reports the number of running processes.
func ProcessCount(ctx context.Context) (uint64, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return info.Procs, nil
}

// Collect gathers every Report field. Fields the OS does not expose are
// left at their zero value; the first error encountered is returned
// alongside whatever was collected.
func Collect(ctx context.Context) (*Report, error) {
	report := &Report{}
	var firstErr error

	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	info, err := host.InfoWithContext(ctx)
	if err == nil {
		report.Hostname = info.Hostname
		report.OSRelease = info.KernelVersion
		report.Processes = info.Procs
	}
	keep(err)

	cores, err := cpu.CountsWithContext(ctx, true)
	if err == nil {
		report.CPUCores = cores
	}
	keep(err)

	speed, err := CPUSpeedMHz(ctx)
	if err == nil {
		report.CPUSpeedMHz = speed
	}
	keep(err)

	return report, firstErr
}
