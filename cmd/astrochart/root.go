package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seleneworks/astrochart/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "astrochart",
	Short: "Celestial position and chart geometry calculator",
	Long: "astrochart computes planetary positions, house cusps and aspects\n" +
		"for a given date, time and place, using either the built-in orbital\n" +
		"model or a JPL ephemeris file.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(viper.GetBool("debug"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .astrochart.yaml)")
	pf.Bool("debug", false, "enable debug logging")
	pf.Bool("json", false, "emit JSON instead of text")
	pf.String("ephemeris", "", "path to a JPL binary ephemeris file")

	pf.String("date", "", "civil date as YYYY-MM-DD")
	pf.String("time", "12:00:00", "civil time as HH:MM or HH:MM:SS")
	pf.Float64("tz", 0, "timezone offset from UTC in hours")
	pf.Float64("lat", 0, "geographic latitude, degrees north")
	pf.Float64("lon", 0, "geographic longitude, degrees east")
	pf.String("house-system", "Placidus", "house system name")
	pf.Bool("sidereal", false, "use the sidereal zodiac")
	pf.Bool("include-retrograde", false, "keep retrograde pairs in aspect detection")
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".astrochart")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ASTROCHART")
	viper.AutomaticEnv()
	viper.BindPFlags(rootCmd.PersistentFlags())

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
