package constants

// Pagination defaults and caps shared by the REST layer
const (
	DEFAULT_LIMIT  = 20
	DEFAULT_OFFSET = uint64(0)
	MAX_PAGE_SIZE  = 100

	// DEFAULT_STATS_DAYS is how far back the daily stats query reaches
	// when no explicit range is given
	DEFAULT_STATS_DAYS = 30

	// DEFAULT_STATS_MONTHS is how far back the monthly stats query reaches
	// when no explicit range is given
	DEFAULT_STATS_MONTHS = 12
)
