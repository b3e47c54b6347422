package domain

// Default calendar values
const (
	DefaultServiceDurationHours = 2.0
	DefaultSlotStepMinutes      = 60
)

// Default booking window used when no availability rule matches the date
var (
	DefaultWindowStart = mustTime("09:00")
	DefaultWindowEnd   = mustTime("17:00")
)

// Business validation constants
const (
	MaxBookingDurationHours = 24
	MaxCustomerNameLength   = 200
	MaxPhoneLength          = 50
	MaxLocationLength       = 500
	MaxRuleNotesLength      = 200
	MaxAdminNotesLength     = 2000
	MaxWeekday              = 6
)

// DurationHoursPrecision знаков после запятой в duration_hours (NUMERIC(4,1))
const DurationHoursPrecision int32 = 1

// Pagination and listing limits
const (
	DefaultPageSize       = 20
	MaxPageSize           = 100
	FeaturedProductsLimit = 6
	FeaturedProjectsLimit = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, которые занимают время в календаре
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
