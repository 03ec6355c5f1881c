package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seleneworks/astrochart/pkg/aspects"
)

var aspectsCmd = &cobra.Command{
	Use:   "aspects",
	Short: "Detect aspects between bodies only",
	RunE:  runAspects,
}

func init() {
	rootCmd.AddCommand(aspectsCmd)
}

func printAspectTable(found []aspects.Aspect) {
	for _, a := range found {
		phase := "separating"
		if a.Applying {
			phase = "applying"
		}
		fmt.Printf("%-8s %-14s %-8s orb %5.2f°  %s\n",
			a.BodyA, a.Type, a.BodyB, a.OrbDeg, phase)
	}
}

func runAspects(cmd *cobra.Command, args []string) error {
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
		return emitJSON(chartToJSON(c).Aspects)
	}
	if len(c.Aspects) == 0 {
		fmt.Println("no aspects in orb")
		return nil
	}
	printAspectTable(c.Aspects)
	return nil
}
