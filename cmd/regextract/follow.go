package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/regextract/regextract-go/pkg/regextract"
)

// warnRateLimit is the maximum number of follow warnings logged per second.
const warnRateLimit = 5

var followCmd = &cobra.Command{
	Use:   "follow PATH",
	Short: "Extract from lines appended to a growing file",
	Long: `Follow a file like tail -f and print the matches found in every new
line. Lines without any match are skipped. Stops on Ctrl+C.

Examples:
  # New lines only
  regextract follow /var/log/app.log

  # Existing content first, as JSON Lines
  regextract follow --from-start --format jsonl /var/log/app.log

  # Network file systems without inotify
  regextract follow --poll /mnt/share/app.log`,
	Args: cobra.ExactArgs(1),
	RunE: runFollow,
}

func init() {
	followCmd.Flags().Bool("from-start", false, "Scan existing content before following")
	followCmd.Flags().Bool("poll", false, "Poll for changes instead of using file system notifications")
	rootCmd.AddCommand(followCmd)
}

func runFollow(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cmd, vip)
	if err != nil {
		return err
	}
	defer a.Close()

	fromStart, _ := cmd.Flags().GetBool("from-start")
	poll, _ := cmd.Flags().GetBool("poll")

	lines, errs, err := a.ex.Follow(ctx, args[0], regextract.FollowConfig{
		FromStart: fromStart,
		Poll:      poll,
	})
	if err != nil {
		return err
	}

	return a.drain(ctx, cmd, lines, errs)
}

// drain writes line results until both channels close or ctx is done.
// Warnings beyond warnRateLimit per second are counted, not logged.
func (a *app) drain(ctx context.Context, cmd *cobra.Command, lines <-chan regextract.LineResult, errs <-chan error) error {
	limiter := rate.NewLimiter(warnRateLimit, warnRateLimit)
	suppressed := 0
	defer func() {
		if suppressed > 0 {
			a.log.Warn("follow warnings suppressed", "count", suppressed)
		}
	}()

	for lines != nil || errs != nil {
		select {
		case res, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			if err := a.write(cmd, lineRecord(res)); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if !limiter.Allow() {
				suppressed++
				continue
			}
			a.log.Warn("follow error", "error", err)
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}
