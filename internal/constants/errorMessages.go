package constants

const (
	MsgMissingFlightID     = "Missing flight ID"
	MsgMissingOriginDest   = "Missing origin or destination"
	MsgMockProviderDown    = "API Error, using mock. %s"
	MsgMockNoFlights       = "No flights from API, using mock data"
	MsgMockException       = "Exception: %s, using mock data"
	MsgAirportsDBDisabled  = "Airport database is not configured"
	MsgAirportsImported    = "Airports imported successfully"
	MsgInternalServerError = "Internal server error"
	MsgUnauthorized        = "Unauthorized"
	MsgTooManyRequests     = "Too many requests"
)
