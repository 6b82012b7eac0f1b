package controllers

import (
	"github.com/MdRakibHossen917/life-nest-company-server/config"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/services"
)

// Controller carries the dependencies every handler needs. It is built
// once in main and handed to bootstrap; handlers never reach for globals.
type Controller struct {
	DB       *models.Database
	Config   *config.Config
	Payments services.PaymentGateway
}
