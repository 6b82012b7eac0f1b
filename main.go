package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MdRakibHossen917/life-nest-company-server/bootstrap"
	"github.com/MdRakibHossen917/life-nest-company-server/config"
	"github.com/MdRakibHossen917/life-nest-company-server/controllers"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/segment"
	"github.com/MdRakibHossen917/life-nest-company-server/services"
)

func main() {
	cfg := config.New()

	db, err := models.Connect(config.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	defer segment.CloseClient()

	var verifier services.TokenVerifier
	if _, noop := os.LookupEnv("NOOP_AUTH"); !noop {
		verifier, err = services.NewRSAVerifier(config.JWTPublicKey())
		if err != nil {
			slog.Error("failed to initialise token verifier", "error", err)
			os.Exit(1)
		}
	}

	ctrl := &controllers.Controller{
		DB:       db,
		Config:   cfg,
		Payments: services.NewStripeGateway(config.StripeKey()),
	}

	r := bootstrap.Bootstrap(ctrl, db, verifier)
	port := config.GetPort()
	slog.Info("starting server", "port", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
