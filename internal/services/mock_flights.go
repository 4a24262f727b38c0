package services

import "skyboard/flightdeck/internal/models/dtos"

// mockFlights keeps the live map populated when the provider is down
func mockFlights() []dtos.FlightSummary {
	return []dtos.FlightSummary{
		{
			ID: "mock1", Callsign: "LA3418", Latitude: -23.43, Longitude: -46.47, Heading: 45,
			Altitude: 35000, GroundSpeed: 450, Speed: 450, Airline: "LA", AirlineICAO: "TAM", Aircraft: "A320",
			Origin: "GRU", Destination: "POA", FlightNumber: "LA3418",
		},
		{
			ID: "mock2", Callsign: "TP89", Latitude: 38.77, Longitude: -9.13, Heading: 200,
			Altitude: 38000, GroundSpeed: 480, Speed: 480, Airline: "TP", AirlineICAO: "TAP", Aircraft: "A330",
			Origin: "LIS", Destination: "GRU", FlightNumber: "TP89",
		},
		{
			ID: "mock3", Callsign: "AA950", Latitude: 40.64, Longitude: -73.77, Heading: 180,
			Altitude: 12000, GroundSpeed: 300, Speed: 300, Airline: "AA", AirlineICAO: "AAL", Aircraft: "B777",
			Origin: "JFK", Destination: "GRU", FlightNumber: "AA950",
		},
		{
			ID: "mock4", Callsign: "G31234", Latitude: -22.81, Longitude: -43.24, Heading: 270,
			Altitude: 28000, GroundSpeed: 420, Speed: 420, Airline: "G3", AirlineICAO: "GLO", Aircraft: "B738",
			Origin: "GIG", Destination: "CGH", FlightNumber: "G31234",
		},
	}
}
