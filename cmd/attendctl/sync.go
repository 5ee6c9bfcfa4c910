package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	syncDeviceID int64
	syncAll      bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull fresh punches from terminals into the database",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().Int64Var(&syncDeviceID, "device", 0, "Sync a single device by id")
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "Sync every registered device")
}

func runSync(cmd *cobra.Command, args []string) error {
	if syncAll == (syncDeviceID > 0) {
		return errors.New("exactly one of --device or --all is required")
	}

	svc, err := buildServices()
	if err != nil {
		return err
	}
	defer svc.close()

	ctx := cmd.Context()

	if syncDeviceID > 0 {
		result, err := svc.sync.SyncDevice(ctx, syncDeviceID)
		if err != nil {
			return err
		}
		fmt.Printf("device %d (%s): %d new, %d malformed skipped\n",
			result.DeviceID, result.SerialNumber, result.NewRecordsCount, result.SkippedMalformed)
		return nil
	}

	result, err := svc.sync.SyncAll(ctx)
	if err != nil {
		return err
	}
	for _, outcome := range result.Devices {
		if outcome.Success {
			fmt.Printf("device %d (%s): %d new, %d malformed skipped\n",
				outcome.Result.DeviceID, outcome.Result.SerialNumber,
				outcome.Result.NewRecordsCount, outcome.Result.SkippedMalformed)
		} else {
			fmt.Printf("device %d: FAILED: %s\n", outcome.DeviceID, outcome.Error)
		}
	}
	fmt.Printf("total: %d new records, %d succeeded, %d failed\n",
		result.TotalNewRecords, result.SucceededCount, result.FailedCount)

	if result.FailedCount > 0 {
		return fmt.Errorf("%d device(s) failed to sync", result.FailedCount)
	}
	return nil
}
