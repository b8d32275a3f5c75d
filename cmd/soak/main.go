// Soak runner for the session lifecycle.
//
// This tool runs the scenario catalog over and over for a long period and
// watches for leaked sessions: browsers that were launched but never
// released, goroutines that keep piling up and heap growth.
//
// Usage:
//
//	go run ./cmd/soak --duration 8h --site the-internet=http://localhost:8080
//	go run ./cmd/soak --duration 10m --tags hover  # shorter test
//
// Exposes pprof endpoint at :6060 for live profiling:
//
//	curl http://localhost:6060/debug/pprof/goroutine?debug=1
//	go tool pprof http://localhost:6060/debug/pprof/heap
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof" // Enable pprof endpoints
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/thesyncim/uicheck/pkg/driver"
	"github.com/thesyncim/uicheck/pkg/errext"
	"github.com/thesyncim/uicheck/pkg/runner"
	"github.com/thesyncim/uicheck/pkg/scenario"
	"github.com/thesyncim/uicheck/pkg/session"
)

const (
	heapLimitMB        = 200
	goroutineSlack     = 50
	statusEveryNRounds = 10
)

// SoakResult contains the results of a soak test run.
type SoakResult struct {
	Duration       time.Duration
	Rounds         int
	Scenarios      int
	Failed         int
	Errored        int
	Launched       int64
	Closed         int64
	PeakHeapMB     float64
	PeakGoroutines int
	Status         string
}

// countingDriver counts launched and closed browsers so leaks show up as a
// difference between the two.
type countingDriver struct {
	session.Driver
	launched, closed *atomic.Int64
}

func (d countingDriver) Launch(ctx context.Context) (session.Browser, error) {
	b, err := d.Driver.Launch(ctx)
	if err != nil {
		return nil, err
	}
	d.launched.Add(1)
	return countingBrowser{Browser: b, closed: d.closed}, nil
}

type countingBrowser struct {
	session.Browser
	closed *atomic.Int64
}

func (b countingBrowser) Close() error {
	b.closed.Add(1)
	return b.Browser.Close()
}

func main() {
	duration := flag.Duration("duration", 8*time.Hour, "Test duration (e.g., 1h, 24h)")
	pause := flag.Duration("pause", 5*time.Second, "Pause between rounds")
	pprofPort := flag.Int("pprof-port", 6060, "Port for pprof HTTP server")
	tags := flag.StringSlice("tags", nil, "Run only scenarios with any of these tags")
	sites := flag.StringToString("site", nil, "Override a site base URL")
	flag.Parse()

	logger := logrus.New()

	fmt.Printf("Session Soak Test Runner\n")
	fmt.Printf("========================\n")
	fmt.Printf("Duration: %v\n", *duration)
	fmt.Printf("Pprof:    http://localhost:%d/debug/pprof/\n", *pprofPort)
	fmt.Printf("\n")

	go func() {
		addr := fmt.Sprintf(":%d", *pprofPort)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.WithError(err).Warn("pprof server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := session.ConfigFromEnv()
	if err != nil {
		logger.WithError(err).Error("Invalid session config")
		os.Exit(int(errext.InvalidConfig))
	}
	drv, err := driver.New(cfg)
	if err != nil {
		logger.WithError(err).Error("Invalid driver")
		os.Exit(int(errext.InvalidConfig))
	}
	cat, err := scenario.Default()
	if err != nil {
		logger.WithError(err).Error("Invalid catalog")
		os.Exit(int(errext.InvalidConfig))
	}
	cat.WithSites(*sites)

	result := runSoakTest(ctx, logger, drv, cfg, cat, *tags, *duration, *pause)
	printSummary(result)

	if result.Status == "PASS" {
		os.Exit(0)
	}
	os.Exit(int(errext.ChecksFailed))
}

func runSoakTest(
	ctx context.Context, logger *logrus.Logger, drv session.Driver, cfg session.Config,
	cat *scenario.Catalog, tags []string, duration, pause time.Duration,
) SoakResult {
	counting := countingDriver{Driver: drv, launched: new(atomic.Int64), closed: new(atomic.Int64)}
	quiet := logrus.New()
	quiet.SetLevel(logrus.WarnLevel)
	quiet.SetFormatter(logger.Formatter)
	m := session.NewManager(counting, cfg, session.WithLogger(quiet))
	r := runner.New(m, cat, runner.Options{Logger: quiet})

	result := SoakResult{Status: "PASS"}
	var memStats runtime.MemStats
	baseGoroutines := runtime.NumGoroutine()
	startTime := time.Now()

	logger.Info("Starting soak test")
	for {
		elapsed := time.Since(startTime)
		if ctx.Err() != nil || elapsed >= duration {
			result.Duration = elapsed
			break
		}

		sum := r.Run(ctx, tags...)
		result.Rounds++
		result.Scenarios += len(sum.Results)
		result.Failed += sum.Count(session.Failed)
		result.Errored += sum.Count(session.Errored)

		launched, closed := counting.launched.Load(), counting.closed.Load()
		if launched != closed {
			logger.WithFields(logrus.Fields{"launched": launched, "closed": closed}).Error("Browser leaked")
			result.Status = "FAIL"
		}

		runtime.ReadMemStats(&memStats)
		heapMB := float64(memStats.HeapAlloc) / (1024 * 1024)
		if heapMB > result.PeakHeapMB {
			result.PeakHeapMB = heapMB
		}
		goroutines := runtime.NumGoroutine()
		if goroutines > result.PeakGoroutines {
			result.PeakGoroutines = goroutines
		}

		if result.Rounds%statusEveryNRounds == 0 {
			logger.WithFields(logrus.Fields{
				"elapsed":    formatDuration(elapsed),
				"rounds":     result.Rounds,
				"failed":     result.Failed,
				"errored":    result.Errored,
				"heap_mb":    fmt.Sprintf("%.2f", heapMB),
				"goroutines": goroutines,
			}).Info("Soak status")
		}

		if heapMB > heapLimitMB {
			logger.WithField("heap_mb", heapMB).Error("Memory limit exceeded")
			result.Status = "FAIL"
		}
		if goroutines > baseGoroutines+goroutineSlack {
			logger.WithFields(logrus.Fields{"goroutines": goroutines, "base": baseGoroutines}).Error("Goroutines keep growing")
			result.Status = "FAIL"
		}

		select {
		case <-ctx.Done():
		case <-time.After(pause):
		}
	}

	result.Launched, result.Closed = counting.launched.Load(), counting.closed.Load()
	if result.Errored > 0 {
		result.Status = "FAIL"
	}
	return result
}

func printSummary(result SoakResult) {
	fmt.Printf("\n")
	fmt.Printf("Soak Test Complete\n")
	fmt.Printf("==================\n")
	fmt.Printf("Duration:          %v\n", result.Duration.Round(time.Second))
	fmt.Printf("Rounds:            %d\n", result.Rounds)
	fmt.Printf("Scenarios run:     %d\n", result.Scenarios)
	fmt.Printf("Failed:            %d\n", result.Failed)
	fmt.Printf("Errored:           %d\n", result.Errored)
	fmt.Printf("Browsers:          %d launched, %d closed\n", result.Launched, result.Closed)
	fmt.Printf("Peak HeapAlloc:    %.2f MB\n", result.PeakHeapMB)
	fmt.Printf("Peak goroutines:   %d\n", result.PeakGoroutines)
	fmt.Printf("Status:            %s\n", result.Status)
	fmt.Printf("\n")

	fmt.Printf("Pass Criteria:\n")
	fmt.Printf("  - Every browser closed:  %s\n", checkMark(result.Launched == result.Closed))
	fmt.Printf("  - No environment errors: %s\n", checkMark(result.Errored == 0))
	fmt.Printf("  - Peak memory < %d MB:  %s\n", heapLimitMB, checkMark(result.PeakHeapMB < heapLimitMB))
}

func formatDuration(d time.Duration) string {
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func checkMark(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
