package request

type CheckoutRequest struct {
	SlotID string `form:"slot_id" binding:"required,uuid"`
	Name   string `form:"name" binding:"required"`
}

type BrowseSlotsRequest struct {
	Name string `form:"name" binding:"required"`
	Date string `form:"date" binding:"required"`
}
