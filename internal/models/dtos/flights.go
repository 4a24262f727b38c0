package dtos

// Airport is a record of the static airport dataset
type Airport struct {
	IATA    string  `json:"iata"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// FlightSummary is one live flight position as served to the map
type FlightSummary struct {
	ID           string  `json:"id"`
	Callsign     string  `json:"callsign"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Heading      int     `json:"heading"`
	Altitude     int     `json:"altitude"`
	GroundSpeed  int     `json:"ground_speed"`
	Speed        int     `json:"speed"`
	Airline      string  `json:"airline"`
	AirlineICAO  string  `json:"airline_icao"`
	Aircraft     string  `json:"aircraft"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	FlightNumber string  `json:"flight_number"`
}

// FlightDetailsData holds whichever detail fields could be resolved
type FlightDetailsData struct {
	Airline       string `json:"airline,omitempty"`
	AirlineLogo   string `json:"airline_logo,omitempty"`
	AircraftModel string `json:"aircraft_model,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	Status        string `json:"status,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
}

// Departure is a row of the departures board
type Departure struct {
	ID            string  `json:"id"`
	Callsign      string  `json:"callsign"`
	FlightNumber  string  `json:"flight_number"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Airline       string  `json:"airline"`
	AirlineICAO   *string `json:"airline_icao"`
	AirlineLogo   *string `json:"airline_logo"`
	Aircraft      string  `json:"aircraft"`
	Status        string  `json:"status"`
	Duration      string  `json:"duration"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
}

// RouteFlight is a scheduled departure matching a route search
type RouteFlight struct {
	ID           *string       `json:"id"`
	FlightNumber *string       `json:"flight_number"`
	Airline      RouteAirline  `json:"airline"`
	Aircraft     RouteAircraft `json:"aircraft"`
	Time         RouteTimes    `json:"time"`
	Status       *string       `json:"status"`
}

type RouteAirline struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
	Logo *string `json:"logo"`
}

type RouteAircraft struct {
	Model *string `json:"model"`
	Code  *string `json:"code"`
}

type RouteTimes struct {
	Scheduled *int64 `json:"scheduled"`
	Estimated *int64 `json:"estimated"`
	Real      *int64 `json:"real"`
}
