//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"venuebook/internal/domain/venue"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type VenueBuilder struct {
	ID           uuid.UUID
	VendorID     uuid.UUID
	Name         string
	Status       venue.Status
	MinGuests    *int32
	MaxGuests    *int32
	BlockedDates []dateutil.Day
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:       uuid.New(),
		VendorID: uuid.New(),
		Name:     "Test Venue",
		Status:   venue.StatusApproved,
	}
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	capacity := venue.Capacity{MinGuests: v.MinGuests, MaxGuests: v.MaxGuests}
	return venue.NewVenue(v.ID, v.VendorID, v.Name, v.Status, capacity, v.BlockedDates)
}

func (v *VenueBuilder) MustBuild(t *testing.T) *venue.Venue {
	t.Helper()
	ven, err := v.BuildDomain()
	require.NoError(t, err)
	return ven
}

func (v *VenueBuilder) BuildView() *queries.VenueView {
	blocked := make([]time.Time, 0, len(v.BlockedDates))
	for _, d := range v.BlockedDates {
		blocked = append(blocked, d.Time())
	}
	return &queries.VenueView{
		ID:           v.ID,
		VendorID:     v.VendorID,
		Name:         v.Name,
		Status:       v.Status.String(),
		MinGuests:    v.MinGuests,
		MaxGuests:    v.MaxGuests,
		BlockedDates: blocked,
	}
}

// Fluent builder methods
func (v *VenueBuilder) WithID(id uuid.UUID) *VenueBuilder {
	v.ID = id
	return v
}

func (v *VenueBuilder) WithVendorID(vendorID uuid.UUID) *VenueBuilder {
	v.VendorID = vendorID
	return v
}

func (v *VenueBuilder) WithName(name string) *VenueBuilder {
	v.Name = name
	return v
}

func (v *VenueBuilder) WithStatus(status venue.Status) *VenueBuilder {
	v.Status = status
	return v
}

func (v *VenueBuilder) WithCapacity(minGuests, maxGuests int32) *VenueBuilder {
	v.MinGuests = &minGuests
	v.MaxGuests = &maxGuests
	return v
}

func (v *VenueBuilder) WithBlockedDates(dates ...dateutil.Day) *VenueBuilder {
	v.BlockedDates = dates
	return v
}
