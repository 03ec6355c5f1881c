package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var housesCmd = &cobra.Command{
	Use:   "houses",
	Short: "Compute house cusps only",
	RunE:  runHouses,
}

func init() {
	rootCmd.AddCommand(housesCmd)
}

func runHouses(cmd *cobra.Command, args []string) error {
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
		return emitJSON(chartToJSON(c).Houses)
	}
	fmt.Printf("%s houses, Asc %s, MC %s\n", c.System, formatZodiac(c.AscDeg), formatZodiac(c.MCDeg))
	for _, h := range c.Houses {
		fmt.Printf("House %2d  %s\n", h.Number, formatZodiac(h.CuspDeg))
	}
	return nil
}
