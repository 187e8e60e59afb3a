package main

import (
	"fmt"

	"github.com/MKhiriev/cidr-viewer/internal/config"
	"github.com/MKhiriev/cidr-viewer/internal/handler"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/server"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/models"
)

//go:generate swag init --dir ../..,../../internal/handler/http,../../models --generalInfo cmd/server/main.go --output ../../docs --outputTypes go --parseInternal

// @title CIDR Viewer API
// @version 1.0
// @description API for analyzing and validating CIDR ranges
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cidr-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithLevel(cfg.Logging.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
