package queries

import (
	"context"
	"sort"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// GetCalendar returns the day-granularity availability picture for
	// a venue window: vendor-blocked days and booking-occupied days.
	GetCalendar(ctx context.Context, venueID uuid.UUID, from, to dateutil.Day) (*AvailabilityCalendar, error)
}

type OccupancyRepo interface {
	OccupiedSpans(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, span dateutil.Span) ([]booking.OccupiedSpan, error)
}

type AvailabilityCacheStore interface {
	Get(ctx context.Context, venueID uuid.UUID, from, to time.Time) (*AvailabilityCalendar, bool)
	Set(ctx context.Context, cal *AvailabilityCalendar)
}

type availabilityQueriesImpl struct {
	venues    VenueViewRepo
	occupancy OccupancyRepo
	cache     AvailabilityCacheStore
}

func NewAvailabilityQueries(venues VenueViewRepo, occupancy OccupancyRepo, cache AvailabilityCacheStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		venues:    venues,
		occupancy: occupancy,
		cache:     cache,
	}
}

func (q *availabilityQueriesImpl) GetCalendar(ctx context.Context, venueID uuid.UUID, from, to dateutil.Day) (*AvailabilityCalendar, error) {
	window := dateutil.NewSpan(from, to)
	if !window.IsValid() {
		return nil, errs.ErrInvalidDateSpan
	}

	if cal, ok := q.cache.Get(ctx, venueID, from.Time(), to.Time()); ok {
		return cal, nil
	}

	v, err := q.venues.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVenueNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	occupied, err := q.occupancy.OccupiedSpans(ctx, nil, venueID, window)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	cal := &AvailabilityCalendar{
		VenueID:      venueID,
		From:         from.Time(),
		To:           to.Time(),
		BlockedDates: blockedWithin(v.BlockedDates, window),
		BookedDates:  bookedWithin(occupied, window),
	}
	q.cache.Set(ctx, cal)
	return cal, nil
}

func blockedWithin(blocked []time.Time, window dateutil.Span) []time.Time {
	out := []time.Time{}
	for _, t := range blocked {
		d := dateutil.NormalizeDay(t)
		if window.Contains(d) {
			out = append(out, d.Time())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func bookedWithin(occupied []booking.OccupiedSpan, window dateutil.Span) []time.Time {
	seen := make(map[dateutil.Day]struct{})
	out := []time.Time{}
	for _, occ := range occupied {
		for _, d := range occ.Span.Days() {
			if !window.Contains(d) {
				continue
			}
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d.Time())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
