// Command cadence-play runs cadence JSON scripts headlessly, frame by frame,
// and logs what the sequences do.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
