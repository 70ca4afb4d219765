package main

import (
	"github.com/RubachokBoss/ontrack-service/internal/cli"
	"github.com/RubachokBoss/ontrack-service/pkg/logger"
)

func main() {
	log := logger.New()

	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Ontrack service failed")
	}
}
