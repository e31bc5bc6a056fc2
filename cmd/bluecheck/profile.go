package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bluecheck/internal/prof"
)

// startProfiling enables the profiles requested by the persistent flags. The
// returned stop function logs failures instead of returning them.
func startProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()
	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	session, err := prof.Start(cpuProfile, memProfile)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			logger.Warn("profiling", zap.Error(err))
		}
	}, nil
}
