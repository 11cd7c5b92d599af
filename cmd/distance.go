package cmd

import (
	"fmt"

	"github.com/USA-RedDragon/geodist-server/internal/config"
	"github.com/USA-RedDragon/geodist-server/internal/geo"
	"github.com/USA-RedDragon/geodist-server/internal/units"
	"github.com/spf13/cobra"
)

const (
	fromKey     = "from"
	toKey       = "to"
	unitKey     = "unit"
	strategyKey = "strategy"
)

func newDistanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "distance",
		Short:         "Compute the distance between two coordinates",
		Example:       "geodist-server distance --from 34.0522,-118.2437 --to 40.7128,-74.0060 --unit km",
		Args:          cobra.NoArgs,
		RunE:          runDistance,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().String(fromKey, "", "Starting coordinate as lat,lon")
	cmd.Flags().String(toKey, "", "Ending coordinate as lat,lon")
	cmd.Flags().String(unitKey, config.DefaultGeoDefaultUnit, "Output unit, linear units give a distance and angular units an angular separation")
	cmd.Flags().String(strategyKey, config.DefaultGeoDefaultStrategy, "Distance strategy, mean or ellipsoidal")
	_ = cmd.MarkFlagRequired(fromKey)
	_ = cmd.MarkFlagRequired(toKey)
	return cmd
}

func runDistance(cmd *cobra.Command, _ []string) error {
	fromStr, err := cmd.Flags().GetString(fromKey)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", fromKey, err)
	}
	toStr, err := cmd.Flags().GetString(toKey)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", toKey, err)
	}
	unitStr, err := cmd.Flags().GetString(unitKey)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", unitKey, err)
	}
	strategyStr, err := cmd.Flags().GetString(strategyKey)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", strategyKey, err)
	}

	from, err := geo.ParseCoordinate(fromStr)
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", fromKey, err)
	}
	to, err := geo.ParseCoordinate(toStr)
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", toKey, err)
	}
	unit, err := units.Parse(unitStr)
	if err != nil {
		return err
	}

	var result float64
	if units.Classify(unit) == units.NonLinear {
		result, err = geo.AngularSeparation(from, to, unit)
	} else {
		var strategy geo.Strategy
		strategy, err = geo.ParseStrategy(strategyStr)
		if err != nil {
			return err
		}
		result, err = geo.Compute(strategy, from, to, unit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.6f %s\n", result, unit)
	return nil
}
