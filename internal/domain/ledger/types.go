package ledger

type EntryType string

const (
	TypeIncome  EntryType = "income"
	TypeExpense EntryType = "expense"
)

func (t EntryType) String() string {
	return string(t)
}

type EntryStatus string

const (
	StatusPaid      EntryStatus = "paid"
	StatusPending   EntryStatus = "pending"
	StatusUnpaid    EntryStatus = "unpaid"
	StatusCancelled EntryStatus = "cancelled"
)

func (s EntryStatus) String() string {
	return string(s)
}

// CategoryBookingPayment is the fixed category for auto-generated
// booking income entries.
const CategoryBookingPayment = "Booking Payment"
