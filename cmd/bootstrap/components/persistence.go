package components

import (
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/readstore"
	"venuebook/internal/infra/uow"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.OccupancyRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(commands.BookingIncomeReads)),
		),
		// Lead
		fx.Annotate(
			readstore.NewLeadReadStore,
			fx.As(new(queries.LeadViewRepo)),
		),
		// Ledger
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerViewRepo)),
		),
		// Venue
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
