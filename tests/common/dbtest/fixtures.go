//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestVenue inserts an approved venue owned by vendorID.
func CreateTestVenue(t *testing.T, db DBLike, vendorID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO venues (id, vendor_id, name, status) VALUES ($1, $2, $3, 'approved')`,
		venueID, vendorID, name)
	require.NoError(t, err)
	return venueID
}

// CreateBlockedVenue inserts an approved venue with vendor-blocked days.
func CreateBlockedVenue(t *testing.T, db DBLike, vendorID uuid.UUID, name string, blocked ...dateutil.Day) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	dates := make([]time.Time, len(blocked))
	for i, d := range blocked {
		dates[i] = d.Time()
	}
	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO venues (id, vendor_id, name, status, blocked_dates) VALUES ($1, $2, $3, 'approved', $4)`,
		venueID, vendorID, name, dates)
	require.NoError(t, err)
	return venueID
}

// CreateTestBooking inserts a booking row directly, bypassing the
// availability gate. Useful for seeding occupancy.
func CreateTestBooking(t *testing.T, db DBLike, venueID uuid.UUID, customerID uuid.UUID, from, to dateutil.Day, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO bookings (id, customer_id, venue_id, date_from, date_to, single_day, guests, total_amount, status, payment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, 20, 50000, $7, 'paid')`,
		bookingID, customerID, venueID, from.Time(), to.Time(), from == to, status)
	require.NoError(t, err)
	return bookingID
}

// CreateApprovedPaidBooking inserts a booking that already cleared the
// admin gate with a captured payment, in the given status. These rows
// are what the ledger backfill sweeps up.
func CreateApprovedPaidBooking(t *testing.T, db DBLike, venueID uuid.UUID, customerID uuid.UUID, from, to dateutil.Day, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO bookings (id, customer_id, venue_id, date_from, date_to, single_day, guests, total_amount, status, payment_status, admin_approved)
		 VALUES ($1, $2, $3, $4, $5, $6, 20, 50000, $7, 'paid', TRUE)`,
		bookingID, customerID, venueID, from.Time(), to.Time(), from == to, status)
	require.NoError(t, err)
	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables so each subtest starts from a clean
// slate. The schema itself survives, only the rows go.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
