package api

import (
	"net/http"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	TrainID        string `json:"trainId"`
	PassengerName  string `json:"passengerName"`
	PassengerEmail string `json:"passengerEmail"`
	PassengerPhone string `json:"passengerPhone"`
	NumberOfSeats  int    `json:"numberOfSeats"`
	TravelDate     string `json:"travelDate"`
	SeatNumbers    string `json:"seatNumbers"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.searchByEmail)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/cancel", h.cancel)
	router.DELETE("/:id", h.delete)
}

func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching bookings")
		return
	}
	respondList(c, list)
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error fetching booking")
		return
	}
	respondData(c, http.StatusOK, "", b)
}

func (h *BookingHandler) searchByEmail(c *gin.Context) {
	list, err := h.service.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err, "Error fetching bookings")
		return
	}
	respondList(c, list)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		TrainID:        req.TrainID,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		PassengerPhone: req.PassengerPhone,
		NumberOfSeats:  req.NumberOfSeats,
		TravelDate:     req.TravelDate,
		SeatNumbers:    req.SeatNumbers,
	})
	if err != nil {
		respondError(c, err, "Error creating booking")
		return
	}
	respondData(c, http.StatusCreated, "Booking created successfully", b)
}

func (h *BookingHandler) update(c *gin.Context) {
	var patch domain.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "Error updating booking")
		return
	}
	respondData(c, http.StatusOK, "Booking updated successfully", b)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error cancelling booking")
		return
	}
	respondData(c, http.StatusOK, "Booking cancelled successfully", b)
}

func (h *BookingHandler) delete(c *gin.Context) {
	b, err := h.service.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error deleting booking")
		return
	}
	respondData(c, http.StatusOK, "Booking deleted successfully", b)
}
