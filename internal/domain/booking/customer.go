package booking

import (
	"strings"

	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

// Customer is the variant behind an appointment: either a registered
// user or a guest with contact details. Exactly one side is populated.
type Customer struct {
	userID *uint

	guestName  string
	guestEmail string
	guestPhone string
}

func RegisteredCustomer(userID uint) Customer {
	return Customer{userID: &userID}
}

func GuestCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" || (strings.TrimSpace(email) == "" && strings.TrimSpace(phone) == "") {
		return Customer{}, httperr.ErrBusiness("invalid_customer")
	}

	return Customer{
		guestName:  name,
		guestEmail: strings.TrimSpace(email),
		guestPhone: strings.TrimSpace(phone),
	}, nil
}

func (c Customer) IsRegistered() bool {
	return c.userID != nil
}

func (c Customer) UserID() *uint {
	return c.userID
}

// Apply writes the variant onto the appointment row, clearing the
// fields of the other side.
func (c Customer) Apply(ap *models.Appointment) {
	if c.userID != nil {
		ap.UserID = c.userID
		ap.GuestName = ""
		ap.GuestEmail = ""
		ap.GuestPhone = ""
		return
	}

	ap.UserID = nil
	ap.GuestName = c.guestName
	ap.GuestEmail = c.guestEmail
	ap.GuestPhone = c.guestPhone
}
