package dtos

// Payload shapes of the Flightradar24 public endpoints. Only the fields the
// service reads are declared; JSON nulls decode to zero values.

// FeedFlight is one row of the live feed. The feed encodes flights as
// positional arrays keyed by flight id; providers decode them into this shape.
type FeedFlight struct {
	ID              string  `json:"id"`
	ICAO24          string  `json:"icao_24bit"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Heading         int     `json:"heading"`
	Altitude        int     `json:"altitude"`
	GroundSpeed     int     `json:"ground_speed"`
	Squawk          string  `json:"squawk"`
	AircraftCode    string  `json:"aircraft_code"`
	Registration    string  `json:"registration"`
	Time            int64   `json:"time"`
	OriginIATA      string  `json:"origin_airport_iata"`
	DestinationIATA string  `json:"destination_airport_iata"`
	Number          string  `json:"number"`
	AirlineIATA     string  `json:"airline_iata"`
	OnGround        int     `json:"on_ground"`
	VerticalSpeed   int     `json:"vertical_speed"`
	Callsign        string  `json:"callsign"`
	AirlineICAO     string  `json:"airline_icao"`
}

// FlightDetails is the clickhandler payload for a single flight
type FlightDetails struct {
	Identification *DetailIdentification `json:"identification"`
	Status         *StatusInfo           `json:"status"`
	Aircraft       *DetailAircraft       `json:"aircraft"`
	Airline        *AirlineInfo          `json:"airline"`
	Airport        *AirportPair          `json:"airport"`
}

type DetailIdentification struct {
	ID       string       `json:"id"`
	Callsign string       `json:"callsign"`
	Number   FlightNumber `json:"number"`
}

type DetailAircraft struct {
	Model        *AircraftModel  `json:"model"`
	Registration string          `json:"registration"`
	Images       *AircraftImages `json:"images"`
}

type AircraftModel struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type AircraftImages struct {
	Thumbnails []AircraftImage `json:"thumbnails"`
	Medium     []AircraftImage `json:"medium"`
	Large      []AircraftImage `json:"large"`
}

type AircraftImage struct {
	Src       string `json:"src"`
	Link      string `json:"link"`
	Copyright string `json:"copyright"`
	Source    string `json:"source"`
}

type StatusInfo struct {
	Live bool   `json:"live"`
	Text string `json:"text"`
}

type AirlineInfo struct {
	Name string       `json:"name"`
	Code *AirlineCode `json:"code"`
}

type AirlineCode struct {
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

type AirportPair struct {
	Origin      *AirportRef `json:"origin"`
	Destination *AirportRef `json:"destination"`
}

type AirportRef struct {
	Name string       `json:"name"`
	Code *AirportCode `json:"code"`
}

type AirportCode struct {
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

type FlightNumber struct {
	Default string `json:"default"`
}

// AirportDetails is the "response" object of the airport endpoint
type AirportDetails struct {
	Airport *AirportDetailsBody `json:"airport"`
}

type AirportDetailsBody struct {
	PluginData *AirportPluginData `json:"pluginData"`
}

type AirportPluginData struct {
	Schedule *AirportSchedule `json:"schedule"`
}

type AirportSchedule struct {
	Departures *ScheduleBoard `json:"departures"`
	Arrivals   *ScheduleBoard `json:"arrivals"`
}

type ScheduleBoard struct {
	Page *SchedulePage   `json:"page"`
	Data []ScheduleEntry `json:"data"`
}

type SchedulePage struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type ScheduleEntry struct {
	Flight *ScheduledFlight `json:"flight"`
}

type ScheduledFlight struct {
	Identification *DetailIdentification `json:"identification"`
	Status         *StatusInfo           `json:"status"`
	Aircraft       *ScheduleAircraft     `json:"aircraft"`
	Airline        *AirlineInfo          `json:"airline"`
	Airport        *AirportPair          `json:"airport"`
	Time           *ScheduleTimes        `json:"time"`
}

type ScheduleAircraft struct {
	Model        *AircraftModel `json:"model"`
	Registration string         `json:"registration"`
}

type ScheduleTimes struct {
	Scheduled *TimePair `json:"scheduled"`
	Estimated *TimePair `json:"estimated"`
	Real      *TimePair `json:"real"`
}

type TimePair struct {
	Departure *int64 `json:"departure"`
	Arrival   *int64 `json:"arrival"`
}

// DepartureBoard returns the schedule departures, or nil when any level is absent
func (d *AirportDetails) DepartureBoard() []ScheduleEntry {
	if d == nil || d.Airport == nil || d.Airport.PluginData == nil {
		return nil
	}
	sched := d.Airport.PluginData.Schedule
	if sched == nil || sched.Departures == nil {
		return nil
	}
	return sched.Departures.Data
}
