package main

import (
	"flag"
	"fmt"
	"os"

	"mwa/internal/di"
	"mwa/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug logging and console output")
	flag.BoolVar(&flags.OneShot, "oneshot", false, "run the analysis once, persist the snapshot and exit")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "mwa: %s\n", err)
		os.Exit(1)
	}
}
