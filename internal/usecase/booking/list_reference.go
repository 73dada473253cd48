package booking

import (
	"context"
	"log"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

// ListReference serves the read-mostly catalog the booking form needs.
// A transport failure is downgraded to an empty list plus a flag so the
// page can render a fallback instead of crashing.
type ListReference struct {
	repo domain.Repository
}

func NewListReference(repo domain.Repository) *ListReference {
	return &ListReference{repo: repo}
}

func (uc *ListReference) Barbers(ctx context.Context) ([]models.Barber, bool) {
	barbers, err := uc.repo.ListBarbers(ctx)
	if err != nil {
		log.Printf("failed to list barbers: %v", err)
		return []models.Barber{}, false
	}
	return barbers, true
}

func (uc *ListReference) Services(ctx context.Context) ([]models.Service, bool) {
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		log.Printf("failed to list services: %v", err)
		return []models.Service{}, false
	}
	return services, true
}
