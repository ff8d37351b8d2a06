package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/pkg/logger"
)

func (h *Handler) initAddressRoutes(api *gin.RouterGroup) {
	provinces := api.Group("/addresses/provinces")
	{
		provinces.GET("", h.getProvinces)
		provinces.GET("/:province/districts", h.getDistricts)
		provinces.GET("/:province/districts/:district/communes", h.getCommunes)
		provinces.GET("/:province/districts/:district/communes/:commune/villages", h.getVillages)
	}
}

func addressOptions(c *gin.Context, options []domain.AddressOption, err error) {
	if err != nil {
		logger.Error("address lookup failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		errorResponse(c, http.StatusServiceUnavailable, AddressUnavailableCode)
		return
	}
	if options == nil {
		options = []domain.AddressOption{}
	}
	c.JSON(http.StatusOK, options)
}

// @Summary Get Provinces
// @Tags Addresses
// @ModuleID getProvinces
// @Produce  json
// @Success 200 {array} domain.AddressOption
// @Failure 503 {object} ErrorStruct
// @Router /addresses/provinces [get]
func (h *Handler) getProvinces(c *gin.Context) {
	options, err := h.services.Addresses.Provinces(c.Request.Context())
	addressOptions(c, options, err)
}

// @Summary Get Districts
// @Tags Addresses
// @Description Districts of a province. An unknown province yields an empty list.
// @ModuleID getDistricts
// @Produce  json
// @Param province path string true "Province code"
// @Success 200 {array} domain.AddressOption
// @Failure 503 {object} ErrorStruct
// @Router /addresses/provinces/{province}/districts [get]
func (h *Handler) getDistricts(c *gin.Context) {
	options, err := h.services.Addresses.Districts(c.Request.Context(), c.Param("province"))
	addressOptions(c, options, err)
}

// @Summary Get Communes
// @Tags Addresses
// @ModuleID getCommunes
// @Produce  json
// @Param province path string true "Province code"
// @Param district path string true "District code"
// @Success 200 {array} domain.AddressOption
// @Failure 503 {object} ErrorStruct
// @Router /addresses/provinces/{province}/districts/{district}/communes [get]
func (h *Handler) getCommunes(c *gin.Context) {
	options, err := h.services.Addresses.Communes(c.Request.Context(), c.Param("province"), c.Param("district"))
	addressOptions(c, options, err)
}

// @Summary Get Villages
// @Tags Addresses
// @ModuleID getVillages
// @Produce  json
// @Param province path string true "Province code"
// @Param district path string true "District code"
// @Param commune path string true "Commune code"
// @Success 200 {array} domain.AddressOption
// @Failure 503 {object} ErrorStruct
// @Router /addresses/provinces/{province}/districts/{district}/communes/{commune}/villages [get]
func (h *Handler) getVillages(c *gin.Context) {
	options, err := h.services.Addresses.Villages(c.Request.Context(), c.Param("province"), c.Param("district"), c.Param("commune"))
	addressOptions(c, options, err)
}
