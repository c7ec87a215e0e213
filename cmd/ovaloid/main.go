package main

import (
	"os"

	"github.com/rs/zerolog"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	app := newCLIApp(logger)
	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("ovaloid failed")
	}
}
