package constants

type CachePrefix string

const (
	CachePrefixFeed     CachePrefix = "FR24_FEED_"
	CachePrefixDetails  CachePrefix = "FR24_DETAILS_"
	CachePrefixSchedule CachePrefix = "FR24_SCHEDULE_"
)

// Sentinels used when the upstream payload omits a field
const (
	ValueNotAvailable = "N/A"
	ValueUnknown      = "Unknown"
	ValueScheduled    = "Scheduled"
	ValueTBD          = "TBD"
	ValueNow          = "Now"
	ValueEnRoute      = "En Route"
	ValueOnGround     = "On Ground"
)

const (
	DefaultAirport       = "GRU"
	DefaultFlightLimit   = 1500
	AirportSearchLimit   = 10
	AirportMinQueryLen   = 2
	DeparturesLimit      = 6
	FleetCandidateLimit  = 15
	RouteSearchPages     = 6
	MaxFlightIDLength    = 16
	NearbyRadiusMeters   = 40000
	NearbyFallbackLat    = -23.432
	NearbyFallbackLon    = -46.469
	AirlineLogoURLFormat = "https://pics.avs.io/200/200/%s.png"
)
