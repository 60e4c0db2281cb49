package shared

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/lead"
	"venuebook/internal/domain/ledger"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Leads() LeadRepository
	Ledger() LedgerRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	VenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
	OccupiedSpans(ctx context.Context, venueID uuid.UUID, span dateutil.Span) ([]booking.OccupiedSpan, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, now time.Time) error
	UpdateApproval(ctx context.Context, tx db.DBTX, id uuid.UUID, approved bool, now time.Time) error
}

type LeadRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *lead.Lead) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*lead.Lead, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*lead.Lead, error)
	Link(ctx context.Context, tx db.DBTX, l *lead.Lead, now time.Time) error
	UpdateStatusByBookingID(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, status lead.Status, now time.Time) error
}

type LedgerRepository interface {
	InsertIncomeIfAbsent(ctx context.Context, tx db.DBTX, e *ledger.Entry) (bool, error)
}
