package main

import (
	"rezzy-api/core/logger"
	"rezzy-api/core/server"
)

// @title Rezzy API
// @version 1.0
// @description Backend for Rezzy - get notified when a tough restaurant reservation opens up

// @contact.name API Support
// @contact.email support@rezzy.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
