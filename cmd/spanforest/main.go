package main

import (
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/spanforest/cmd/spanforest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
