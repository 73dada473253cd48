package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/httpresp"
	"github.com/heritagecuts/barbershop-api/internal/middleware"
	ucBooking "github.com/heritagecuts/barbershop-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	listReference *ucBooking.ListReference
	getSlots      *ucBooking.GetAvailableSlots
	nextSlot      *ucBooking.GetNextAvailableSlot
	create        *ucBooking.CreateAppointment
}

func NewPublicHandler(
	listReference *ucBooking.ListReference,
	getSlots *ucBooking.GetAvailableSlots,
	nextSlot *ucBooking.GetNextAvailableSlot,
	create *ucBooking.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		listReference: listReference,
		getSlots:      getSlots,
		nextSlot:      nextSlot,
		create:        create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm

	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`

	Notes string `json:"notes"`
}

////////////////////////////////////////////////////////
// REFERENCE DATA
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, ok := h.listReference.Barbers(c.Request.Context())
	if !ok {
		httperr.Unavailable(c, "failed_to_list_barbers", "Could not load barbers right now.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, ok := h.listReference.Services(c.Request.Context())
	if !ok {
		httperr.Unavailable(c, "failed_to_list_services", "Could not load services right now.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) AvailableSlots(c *gin.Context) {
	barberID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	date := c.Query("date")

	times, err := h.getSlots.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_load_slots", "Could not load availability.")
		return
	}

	httpresp.List(c, times)
}

func (h *PublicHandler) NextAvailableSlot(c *gin.Context) {
	barberID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	slot, err := h.nextSlot.Execute(c.Request.Context(), uint(barberID))
	if err != nil {
		httperr.Internal(c, "failed_to_load_slots", "Could not load availability.")
		return
	}

	// null is a valid answer: no free slot in the visible window
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT (guest or registered)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// A bearer token makes this a registered booking; otherwise the
	// guest contact fields must carry the identity.
	var customer domain.Customer
	actor := middleware.ActorFromContext(c)
	if actor.UserID != 0 {
		customer = domain.RegisteredCustomer(actor.UserID)
	} else {
		var err error
		customer, err = domain.GuestCustomer(req.GuestName, req.GuestEmail, req.GuestPhone)
		if err != nil {
			httperr.BadRequest(c, "invalid_customer", "Guest bookings need a name and a contact.")
			return
		}
	}

	ap, err := h.create.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		Customer:  customer,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable",
				"This time slot is no longer available. Pick another time or call the shop.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Service not found.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}
