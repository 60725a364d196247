package api

import (
	"errors"
	"net/http"

	"slotbook/internal/domain/schedule"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	availability queries.AvailabilityQueries
	schedule     commands.ScheduleCommands
}

func NewAdminHandler(availability queries.AvailabilityQueries, schedule commands.ScheduleCommands) *AdminHandler {
	return &AdminHandler{
		availability: availability,
		schedule:     schedule,
	}
}

// @Summary Admin panel
// @Description Lists bookings and availability slots
// @Tags admin
// @Produce html
// @Success 200 {string} string
// @Router /admin [get]
func (h *AdminHandler) Panel(c *gin.Context) {
	panel, err := h.availability.AdminPanel(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin.html", gin.H{
			"Error": "Unable to load bookings and availabilities.",
		})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Bookings": panel.Bookings,
		"Slots":    panel.Slots,
	})
}

// @Summary Availability form
// @Tags admin
// @Produce html
// @Success 200 {string} string
// @Router /add-availability [get]
func (h *AdminHandler) AddAvailabilityPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add-availability.html", gin.H{})
}

// @Summary Add availability
// @Description Generates bookable slots for one working day
// @Tags admin
// @Accept x-www-form-urlencoded
// @Success 302 {string} string
// @Failure 400 {string} string
// @Router /add-availability [post]
func (h *AdminHandler) AddAvailability(c *gin.Context) {
	var req reqdto.AddAvailabilityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "add-availability.html", gin.H{
			"Error": "All fields except the break are required.",
		})
		return
	}

	_, err := h.schedule.AddAvailability(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDay),
			errors.Is(err, schedule.ErrInvalidClockTime),
			errors.Is(err, schedule.ErrInvalidSlotLength):
			c.HTML(http.StatusBadRequest, "add-availability.html", gin.H{
				"Error": "Invalid date, time, or slot length.",
			})
		default:
			c.HTML(http.StatusInternalServerError, "add-availability.html", gin.H{
				"Error": "Unable to save the availability.",
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// @Summary Delete availability
// @Description Removes a slot unless it is booked
// @Tags admin
// @Success 302 {string} string
// @Failure 400 {string} string
// @Router /delete-availability/{id} [post]
func (h *AdminHandler) DeleteAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid availability id.")
		return
	}

	if err := h.schedule.DeleteAvailability(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "Unable to delete the availability.")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// @Summary Delete booking
// @Description Removes a booking and reopens its slot
// @Tags admin
// @Success 302 {string} string
// @Failure 400 {string} string
// @Router /delete/{id} [post]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid booking id.")
		return
	}

	if err := h.schedule.DeleteBooking(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "Unable to delete the booking.")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}
