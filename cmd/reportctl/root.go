package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"rental-backend/config"
	"rental-backend/services/report"

	"github.com/spf13/cobra"
)

var (
	ownerID  uint
	startRaw string
	endRaw   string
)

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Inspect and maintain the owner report cache",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if ownerID == 0 {
			return fmt.Errorf("--owner is required")
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().UintVar(&ownerID, "owner", 0, "Owner id")
	rootCmd.PersistentFlags().StringVar(&startRaw, "start", "", "Period start (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&endRaw, "end", "", "Period end (YYYY-MM-DD)")

	rootCmd.AddCommand(refreshCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(purgeCmd())
}

// period resolves --start/--end into the cache partition and its date window.
func period() (report.PeriodConfig, report.DateWindow, error) {
	start, err := report.ParseReportDate(startRaw)
	if err != nil {
		return report.PeriodConfig{}, report.DateWindow{}, err
	}
	end, err := report.ParseReportDate(endRaw)
	if err != nil {
		return report.PeriodConfig{}, report.DateWindow{}, err
	}
	cfg, err := report.BuildPeriodConfig(start, end)
	if err != nil {
		return report.PeriodConfig{}, report.DateWindow{}, err
	}
	return cfg, report.NewDateWindow(start, end), nil
}

func newReportService(ctx context.Context) (*report.Service, error) {
	if err := config.ConnectDatabase(); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	var lock report.RefreshLocker
	if rdb, err := config.ConnectRedis(ctx); err == nil && rdb != nil {
		lock = report.NewRedisRefreshLock(rdb)
	}
	return report.NewService(report.NewGormStore(config.DB), config.LoadReportConfig(), lock), nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 5*time.Minute)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
