package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
