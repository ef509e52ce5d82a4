// Command vadriverinfo is an offline diagnostic for the driver: it
// probes the kernel M2M decoder nodes this driver would itself open
// and prints what it finds, without going through libva at all.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/m2m"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/va"
)

var candidateDevicePaths = []string{"/dev/video0", "/dev/video-dec0"}

func main() {
	logger, closeLog, err := va.ConfigureLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	g, _ := errgroup.WithContext(context.Background())
	results := make([]deviceReport, len(candidateDevicePaths))
	for i, path := range candidateDevicePaths {
		i, path := i, path
		g.Go(func() error {
			results[i] = probeDevice(path)
			return nil
		})
	}
	_ = g.Wait() // probeDevice never returns an error; failures are recorded per-device

	found := false
	for _, r := range results {
		printReport(r)
		found = found || r.ok
	}
	if !found {
		slog.Error("no usable M2M decoder device found", "tried", candidateDevicePaths)
		os.Exit(1)
	}
}

type deviceReport struct {
	path     string
	ok       bool
	err      error
	caps     uint32
	profiles []m2m.Profile
}

func probeDevice(path string) deviceReport {
	dev, err := m2m.Open(path)
	if err != nil {
		return deviceReport{path: path, err: err}
	}
	defer dev.Close()

	cap, err := dev.QueryCap()
	if err != nil {
		return deviceReport{path: path, err: err}
	}

	return deviceReport{
		path:     path,
		ok:       true,
		caps:     cap.Caps,
		profiles: va.SupportedProfiles(dev),
	}
}

func printReport(r deviceReport) {
	if !r.ok {
		fmt.Printf("%s: unavailable (%v)\n", r.path, r.err)
		return
	}
	fmt.Printf("%s: caps=%#x\n", r.path, r.caps)
	for _, p := range r.profiles {
		fmt.Printf("  profile %v\n", p)
	}
}
