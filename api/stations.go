package api

import (
	"net/http"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/stations"
	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	service stations.StationUseCase
}

func NewStationHandler(service stations.StationUseCase) *StationHandler {
	return &StationHandler{service: service}
}

func (h *StationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/code/:code", h.getByCode)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *StationHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching stations")
		return
	}
	respondList(c, list)
}

func (h *StationHandler) get(c *gin.Context) {
	station, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error fetching station")
		return
	}
	respondData(c, http.StatusOK, "", station)
}

func (h *StationHandler) getByCode(c *gin.Context) {
	station, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "Error fetching station")
		return
	}
	respondData(c, http.StatusOK, "", station)
}

func (h *StationHandler) search(c *gin.Context) {
	list, err := h.service.SearchByCity(c.Request.Context(), c.Query("city"))
	if err != nil {
		respondError(c, err, "Error searching stations")
		return
	}
	respondList(c, list)
}

func (h *StationHandler) create(c *gin.Context) {
	var req stations.CreateStationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	station, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Error creating station")
		return
	}
	respondData(c, http.StatusCreated, "Station created successfully", station)
}

func (h *StationHandler) update(c *gin.Context) {
	var patch domain.StationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	station, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "Error updating station")
		return
	}
	respondData(c, http.StatusOK, "Station updated successfully", station)
}

func (h *StationHandler) delete(c *gin.Context) {
	station, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error deleting station")
		return
	}
	respondData(c, http.StatusOK, "Station deleted successfully", station)
}
