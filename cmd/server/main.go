package main

import (
	"os"

	"github.com/ChMubasharAli/getpiepay/internal/config"
	"github.com/ChMubasharAli/getpiepay/internal/logging"
	"github.com/ChMubasharAli/getpiepay/internal/server"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.LogConfig{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	if cfg.RecaptchaSecretKey == "" {
		logger.Warn("RECAPTCHA_SECRET_KEY is not set; inquiry submissions will be rejected")
	}
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" || cfg.EmailTo == "" {
		logger.Warn("Mail relay is not fully configured; inquiry submissions will fail")
	}

	srv := server.NewServer(cfg)
	srv.Init()

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
