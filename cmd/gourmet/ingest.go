package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

func newIngestCommand(cc *commandContext) *cobra.Command {
	var (
		userID  string
		token   string
		lockDir string
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Run one photo ingestion for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := cc.log.With("user_id", userID)

			if err := os.MkdirAll(lockDir, 0o755); err != nil {
				return fmt.Errorf("failed to create lock directory: %w", err)
			}
			lock := flock.New(lockPath(lockDir, userID))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("failed to acquire ingest lock: %w", err)
			}
			if !locked {
				log.Warn("ingestion already running, skipping", "lock", lock.Path())
				return nil
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					log.Warn("failed to release ingest lock", "error", err)
				}
			}()

			d, err := openDeps(ctx, cc.cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := d.close(); err != nil {
					log.Error("failed to release resources", "error", err)
				}
			}()

			ingest, _, err := d.newIngest(cc.cfg, cc.log)
			if err != nil {
				return err
			}

			result, err := ingest.Run(ctx, userID, token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: outcome=%s accepted=%d rejected=%d skipped=%d pages=%d ready=%t\n",
				result.Outcome.Message(), result.Outcome, result.Accepted, result.Rejected,
				result.Skipped, result.Pages, result.StatusReady)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id to ingest photos for")
	cmd.Flags().StringVar(&token, "token", os.Getenv("PHOTOS_ACCESS_TOKEN"), "Photo library access token (default $PHOTOS_ACCESS_TOKEN)")
	cmd.Flags().StringVar(&lockDir, "lock-dir", os.TempDir(), "Directory for per-user lock files")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// lockPath maps a user id to a lock file name that is safe on any filesystem.
func lockPath(dir, userID string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, userID)
	return filepath.Join(dir, "gourmet-ingest-"+safe+".lock")
}
