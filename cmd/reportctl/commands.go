package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Recompute every cached summary of the owner for the period",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, w, err := period()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			svc, err := newReportService(ctx)
			if err != nil {
				return err
			}
			if err := svc.Refresher().RefreshAll(ctx, ownerID, p, w); err != nil {
				return err
			}
			fmt.Printf("refreshed owner %d for %s %s\n", ownerID, p.PeriodType, p.PeriodKey)
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	var propertyID uint
	var roomTypeID uint

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a cached property or room type summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (propertyID == 0) == (roomTypeID == 0) {
				return fmt.Errorf("pass exactly one of --property or --room-type")
			}
			p, _, err := period()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			svc, err := newReportService(ctx)
			if err != nil {
				return err
			}

			if propertyID != 0 {
				row, err := svc.Cache().FindProperty(ctx, ownerID, propertyID, p)
				if err != nil {
					return err
				}
				if row == nil {
					return fmt.Errorf("no cached summary for property %d in %s", propertyID, p.PeriodKey)
				}
				return printJSON(row)
			}
			row, err := svc.Cache().FindRoomType(ctx, ownerID, roomTypeID, p)
			if err != nil {
				return err
			}
			if row == nil {
				return fmt.Errorf("no cached summary for room type %d in %s", roomTypeID, p.PeriodKey)
			}
			return printJSON(row)
		},
	}

	cmd.Flags().UintVar(&propertyID, "property", 0, "Property id")
	cmd.Flags().UintVar(&roomTypeID, "room-type", 0, "Room type id")
	return cmd
}

func purgeCmd() *cobra.Command {
	var propertyID uint
	var roomTypeID uint

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete a cached property or room type summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (propertyID == 0) == (roomTypeID == 0) {
				return fmt.Errorf("pass exactly one of --property or --room-type")
			}
			p, _, err := period()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			svc, err := newReportService(ctx)
			if err != nil {
				return err
			}

			if propertyID != 0 {
				err = svc.Cache().DeleteProperty(ctx, ownerID, propertyID, p)
			} else {
				err = svc.Cache().DeleteRoomType(ctx, ownerID, roomTypeID, p)
			}
			if err != nil {
				return err
			}
			fmt.Printf("purged %s %s\n", p.PeriodType, p.PeriodKey)
			return nil
		},
	}

	cmd.Flags().UintVar(&propertyID, "property", 0, "Property id")
	cmd.Flags().UintVar(&roomTypeID, "room-type", 0, "Room type id")
	return cmd
}
