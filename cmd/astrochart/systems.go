package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seleneworks/astrochart/pkg/houses"
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List supported house systems",
	RunE:  runSystems,
}

func init() {
	rootCmd.AddCommand(systemsCmd)
}

func runSystems(cmd *cobra.Command, args []string) error {
	supported := houses.Supported()
	if viper.GetBool("json") {
		names := make([]string, 0, len(supported))
		for _, s := range supported {
			names = append(names, s.String())
		}
		return emitJSON(names)
	}
	for _, s := range supported {
		fmt.Println(s)
	}
	return nil
}
