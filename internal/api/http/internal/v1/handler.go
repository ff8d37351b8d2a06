package v1

import (
	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// @title PharmaHub Signup API
// @version 1.0
// @description Pharmacy tenant registration wizard, identity and address lookups

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initSignupRoutes(v1)
	h.initAddressRoutes(v1)
	h.initAuthRoutes(v1)
}
