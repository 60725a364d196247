package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PublicHandler struct {
	availability queries.AvailabilityQueries
	checkout     commands.CheckoutCommands
}

func NewPublicHandler(availability queries.AvailabilityQueries, checkout commands.CheckoutCommands) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		checkout:     checkout,
	}
}

// @Summary Landing page
// @Description Shows the admin login form
// @Tags public
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (h *PublicHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{})
}

// @Summary Booking page
// @Description Shows the name and date form for browsing slots
// @Tags public
// @Produce html
// @Success 200 {string} string
// @Router /index [get]
func (h *PublicHandler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// @Summary Browse open slots
// @Description Lists the bookable slots for the chosen date
// @Tags public
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200 {string} string
// @Failure 400 {string} string
// @Router /index [post]
func (h *PublicHandler) BrowseSlots(c *gin.Context) {
	var req reqdto.BrowseSlotsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", gin.H{
			"Error": "Please enter your name and pick a date.",
		})
		return
	}

	slots, err := h.availability.OpenSlots(c.Request.Context(), req.Date)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"Error": "Something went wrong. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Name":     req.Name,
		"Date":     req.Date,
		"Slots":    slots,
		"Searched": true,
	})
}

// @Summary Start checkout
// @Description Holds the slot and redirects to the hosted payment page
// @Tags public
// @Accept x-www-form-urlencoded
// @Success 303 {string} string
// @Failure 400 {string} string
// @Router /create-checkout-session [post]
func (h *PublicHandler) CreateCheckoutSession(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid booking request.")
		return
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid booking request.")
		return
	}

	redirectURL, err := h.checkout.Initiate(c.Request.Context(), slotID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.String(http.StatusBadRequest, "That time slot was just taken. Please choose another.")
		default:
			c.String(http.StatusInternalServerError, "Unable to start the payment session. Please try again.")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, redirectURL)
}

// @Summary Payment success page
// @Description Confirmation page after checkout; the booking itself is made by the webhook
// @Tags public
// @Produce html
// @Success 200 {string} string
// @Router /payment-success [get]
func (h *PublicHandler) PaymentSuccess(c *gin.Context) {
	data := gin.H{"Name": c.Query("name")}

	// Display only. If the slot lookup fails the page still confirms by name.
	if slotID, err := uuid.Parse(c.Query("slot_id")); err == nil {
		if slot, err := h.availability.SlotByID(c.Request.Context(), slotID); err == nil {
			data["Day"] = slot.Day
			data["TimeRange"] = slot.TimeRange
		}
	}

	c.HTML(http.StatusOK, "confirmation.html", data)
}
