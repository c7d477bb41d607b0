package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtroode/gourmet-server/internal/model"
	"github.com/dtroode/gourmet-server/internal/repository/postgres"
)

func newPhotosCommand(cc *commandContext) *cobra.Command {
	var (
		userID string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "photos",
		Short: "List stored photos of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := postgres.NewConection(ctx, cc.cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			list, err := postgres.NewPhotoRepository(db).ListByUser(ctx, userID, limit)
			if err != nil {
				return fmt.Errorf("failed to list photos: %w", err)
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No photos stored")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), photoTable(list))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of photos to show")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func photoTable(list []model.Photo) string {
	headers := []string{"ID", "Source", "Category", "Tags", "Stores", "URL"}
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			p.ID,
			string(p.Source),
			p.Category,
			strings.Join(p.Tags, ","),
			strconv.Itoa(len(p.AreaStoreIDs)),
			p.URL,
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft})
}
