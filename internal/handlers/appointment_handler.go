package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/dto"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/httpresp"
	"github.com/heritagecuts/barbershop-api/internal/middleware"
	ucBooking "github.com/heritagecuts/barbershop-api/internal/usecase/booking"
)

type AppointmentHandler struct {
	repo     domain.Repository
	confirm  *ucBooking.ConfirmAppointment
	complete *ucBooking.CompleteAppointment
	cancel   *ucBooking.CancelAppointment
}

func NewAppointmentHandler(
	repo domain.Repository,
	confirm *ucBooking.ConfirmAppointment,
	complete *ucBooking.CompleteAppointment,
	cancel *ucBooking.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		confirm:  confirm,
		complete: complete,
		cancel:   cancel,
	}
}

// ListMine returns the authenticated user's appointments, newest first.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	apps, err := h.repo.ListAppointmentsForUser(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			TimeSlot:    ap.TimeSlot,
			Status:      ap.Status,
			BarberName:  ap.Barber.Name,
			ServiceName: ap.Service.Name,
			Price:       ap.Service.Price,
			CreatedAt:   ap.CreatedAt,
		})
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, "complete")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel")
}

func (h *AppointmentHandler) transition(c *gin.Context, action string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	actor := middleware.ActorFromContext(c)
	ctx := c.Request.Context()

	var (
		ap  any
		ucE error
	)
	switch action {
	case "confirm":
		ap, ucE = h.confirm.Execute(ctx, actor, uint(id))
	case "complete":
		ap, ucE = h.complete.Execute(ctx, actor, uint(id))
	default:
		ap, ucE = h.cancel.Execute(ctx, actor, uint(id))
	}

	if ucE != nil {
		switch {
		case httperr.IsBusiness(ucE, "forbidden"):
			httperr.Forbidden(c, "forbidden", "You cannot perform this action.")
		case httperr.IsBusiness(ucE, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(ucE, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "The appointment cannot change to this state.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Could not update the appointment.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
