package main

import (
	"os"

	"github.com/arthur-debert/assetcp/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("assetcp failed")
		os.Exit(1)
	}
}
