package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seleneworks/astrochart/pkg/chart"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Compute body positions and speeds only",
	RunE:  runPositions,
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}

func printBodyTable(bodies []chart.BodyResult) {
	for _, b := range bodies {
		marker := " "
		if b.Retrograde {
			marker = "R"
		}
		house := ""
		if b.House > 0 {
			house = fmt.Sprintf("  house %2d", b.House)
		}
		fmt.Printf("%-8s %s %s  lat %+7.3f°  %+8.4f°/day%s\n",
			b.Body, formatZodiac(b.LonDeg), marker, b.LatDeg, b.SpeedDegPerDay, house)
	}
}

func runPositions(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags()
	if err != nil {
		return err
	}
	eng, cleanup, err := newEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := eng.Compute(cmd.Context(), req)
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		return emitJSON(chartToJSON(c).Bodies)
	}
	printBodyTable(c.Bodies)
	return nil
}
