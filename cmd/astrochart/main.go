package main

import (
	"fmt"
	"os"

	"github.com/seleneworks/astrochart/internal/log"
)

func main() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
