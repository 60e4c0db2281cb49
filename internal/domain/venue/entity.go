package venue

import (
	"errors"

	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid venue status")

// Capacity is the typed guest range. Both bounds optional; a nil bound
// means unbounded on that side.
type Capacity struct {
	MinGuests *int32
	MaxGuests *int32
}

func (c Capacity) Allows(guests int32) bool {
	if c.MinGuests != nil && guests < *c.MinGuests {
		return false
	}
	if c.MaxGuests != nil && guests > *c.MaxGuests {
		return false
	}
	return true
}

// Venue is a read-mostly snapshot of the vendor-owned venue record.
// The booking core never mutates venues; approval and blocked dates are
// managed by the admin/vendor surfaces outside this module.
type Venue struct {
	id           uuid.UUID
	vendorID     uuid.UUID
	name         string
	status       Status
	capacity     Capacity
	blockedDates map[dateutil.Day]struct{}
}

func NewVenue(id, vendorID uuid.UUID, name string, status Status, capacity Capacity, blockedDates []dateutil.Day) (*Venue, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	blocked := make(map[dateutil.Day]struct{}, len(blockedDates))
	for _, d := range blockedDates {
		blocked[d] = struct{}{}
	}
	return &Venue{
		id:           id,
		vendorID:     vendorID,
		name:         name,
		status:       status,
		capacity:     capacity,
		blockedDates: blocked,
	}, nil
}

func (v *Venue) ID() uuid.UUID       { return v.id }
func (v *Venue) VendorID() uuid.UUID { return v.vendorID }
func (v *Venue) Name() string        { return v.name }
func (v *Venue) Status() Status      { return v.status }
func (v *Venue) Capacity() Capacity  { return v.capacity }

func (v *Venue) IsApproved() bool {
	return v.status == StatusApproved
}

func (v *Venue) IsBlocked(d dateutil.Day) bool {
	_, ok := v.blockedDates[d]
	return ok
}

// BlockedWithin returns the blocked days falling inside the span, sorted
// by enumeration order of the span itself.
func (v *Venue) BlockedWithin(span dateutil.Span) []dateutil.Day {
	var out []dateutil.Day
	for _, d := range span.Days() {
		if v.IsBlocked(d) {
			out = append(out, d)
		}
	}
	return out
}

func (v *Venue) OwnedBy(vendorID uuid.UUID) bool {
	return v.vendorID == vendorID
}
