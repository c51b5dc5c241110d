package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/srgjo27/concert_booking/internal/app"
	"github.com/srgjo27/concert_booking/internal/core/services"
	"github.com/srgjo27/concert_booking/internal/loadtest"
	"github.com/srgjo27/concert_booking/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile   string
		strategy  string
		workers   int
		timeout   time.Duration
		artist    string
		seatLabel string
	)

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Race concurrent bookings against a single seat",
		Long: `Seeds a fresh in-memory system and launches concurrent booking attempts
against one seat. Exactly one attempt must succeed.

Use --strategy all to run the lock-free and mutex engines one after another.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			cfg.ConfigureLogging()

			if !cmd.Flags().Changed("workers") {
				workers = cfg.LoadTest.Workers
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = cfg.LoadTest.Timeout
			}

			strategies := []string{strategy}
			if strategy == "all" {
				strategies = []string{services.StrategyLockFree, services.StrategyMutex}
			}

			var failed bool
			for _, s := range strategies {
				report, err := runOnce(cmd.Context(), s, artist, seatLabel, loadtest.Options{Workers: workers, Timeout: timeout})
				if err != nil && !errors.Is(err, loadtest.ErrTimeout) {
					return err
				}
				printReport(cmd, report)
				if err != nil || report.Successes != 1 {
					failed = true
				}
			}

			if failed {
				return errors.New("mutual exclusion check failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional .env file")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "all", "Booking strategy: lockfree, mutex or all")
	cmd.Flags().IntVarP(&workers, "workers", "w", 5, "Number of concurrent booking attempts")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "Maximum time to wait for all workers")
	cmd.Flags().StringVar(&artist, "artist", "Band X", "Artist of the concert to target")
	cmd.Flags().StringVar(&seatLabel, "seat", "A1", "Seat label to target")

	return cmd
}

func runOnce(ctx context.Context, strategy, artist, seatLabel string, opts loadtest.Options) (loadtest.Report, error) {
	sys, err := app.NewSystem(app.Options{Strategy: strategy})
	if err != nil {
		return loadtest.Report{}, err
	}

	demo, err := sys.Seed(time.Now())
	if err != nil {
		return loadtest.Report{}, err
	}

	concerts := sys.Catalog.SearchByArtist(artist)
	if len(concerts) == 0 {
		return loadtest.Report{}, fmt.Errorf("no concert found for artist %q", artist)
	}

	seat, ok := concerts[0].SeatByLabel(seatLabel)
	if !ok {
		return loadtest.Report{}, fmt.Errorf("seat %s not found on %s concert", seatLabel, artist)
	}

	target := loadtest.Target{
		UserID:    demo.Alice.ID,
		ConcertID: concerts[0].ID,
		SeatID:    seat.ID,
	}

	return loadtest.Run(ctx, sys.Engine, target, opts, logrus.StandardLogger())
}

func printReport(cmd *cobra.Command, report loadtest.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n--- Concurrency Test Results (%s) ---\n", report.Strategy)
	fmt.Fprintf(out, "Total booking attempts: %d\n", report.Attempts)
	fmt.Fprintf(out, "Successful bookings: %d\n", report.Successes)
	fmt.Fprintf(out, "Failed bookings (Seat Not Available): %d\n", report.Unavailable)
	if report.Failed > 0 {
		fmt.Fprintf(out, "Errored bookings: %d\n", report.Failed)
	}
	if report.TimedOut {
		fmt.Fprintln(out, "Timed out before all workers finished")
	}
	fmt.Fprintf(out, "Duration: %s\n", report.Duration)
}
