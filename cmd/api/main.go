package main

import (
	"fmt"
	"os"

	_ "order_core/docs"
	"order_core/internal/adapter/http/routes"
	"order_core/internal/infrastructure/config"
	"order_core/internal/infrastructure/logging"
)

// @title           Order Core API
// @version         1.0
// @description     Quotation-to-order conversion, sample requests and consistency checks backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging configuration: %v\n", err)
		os.Exit(1)
	}

	if err := routes.Run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
