package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vitorindio/agendamento-ferias/internal/app"
	"github.com/vitorindio/agendamento-ferias/internal/bootstrap"
	"github.com/vitorindio/agendamento-ferias/internal/shared/apperror"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	application, err := app.BuildApp(logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}

	if err := bootstrap.StartHTTPServer(application.Router, addr, logger); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
