package api

import (
	"net/http"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-gonic/gin"
)

type TrainHandler struct {
	service trains.TrainUseCase
}

func NewTrainHandler(service trains.TrainUseCase) *TrainHandler {
	return &TrainHandler{service: service}
}

func (h *TrainHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *TrainHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching trains")
		return
	}
	respondList(c, list)
}

func (h *TrainHandler) get(c *gin.Context) {
	train, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error fetching train")
		return
	}
	respondData(c, http.StatusOK, "", train)
}

func (h *TrainHandler) search(c *gin.Context) {
	list, err := h.service.Search(c.Request.Context(), domain.TrainSearch{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
	})
	if err != nil {
		respondError(c, err, "Error searching trains")
		return
	}
	respondList(c, list)
}

func (h *TrainHandler) create(c *gin.Context) {
	var req trains.CreateTrainInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	train, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Error creating train")
		return
	}
	respondData(c, http.StatusCreated, "Train created successfully", train)
}

func (h *TrainHandler) update(c *gin.Context) {
	var patch domain.TrainPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	train, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "Error updating train")
		return
	}
	respondData(c, http.StatusOK, "Train updated successfully", train)
}

func (h *TrainHandler) delete(c *gin.Context) {
	train, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error deleting train")
		return
	}
	respondData(c, http.StatusOK, "Train deleted successfully", train)
}
