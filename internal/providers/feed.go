package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"skyboard/flightdeck/internal/models/dtos"
)

// decodeFeed walks the feed object token by token so flights keep the order
// the upstream sent them in. Non-array members (full_count, version, stats)
// are skipped.
func decodeFeed(r io.Reader) ([]dtos.FeedFlight, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("feed: expected object, got %v", tok)
	}

	flights := make([]dtos.FeedFlight, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("feed: member %q: %w", key, err)
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}

		var row []interface{}
		rowDec := json.NewDecoder(bytes.NewReader(raw))
		rowDec.UseNumber()
		if err := rowDec.Decode(&row); err != nil {
			return nil, fmt.Errorf("feed: flight %q: %w", key, err)
		}

		if flight, ok := parseFeedRow(key, row); ok {
			flights = append(flights, flight)
		}
	}

	return flights, nil
}

// parseFeedRow maps the positional feed array onto FeedFlight
func parseFeedRow(id string, row []interface{}) (dtos.FeedFlight, bool) {
	if len(row) < feedRowMinLength {
		return dtos.FeedFlight{}, false
	}

	f := dtos.FeedFlight{
		ID:              id,
		ICAO24:          rowString(row, 0),
		Latitude:        rowFloat(row, 1),
		Longitude:       rowFloat(row, 2),
		Heading:         int(rowFloat(row, 3)),
		Altitude:        int(rowFloat(row, 4)),
		GroundSpeed:     int(rowFloat(row, 5)),
		Squawk:          rowString(row, 6),
		AircraftCode:    rowString(row, 8),
		Registration:    rowString(row, 9),
		Time:            int64(rowFloat(row, 10)),
		OriginIATA:      rowString(row, 11),
		DestinationIATA: rowString(row, 12),
		Number:          rowString(row, 13),
		OnGround:        int(rowFloat(row, 14)),
		VerticalSpeed:   int(rowFloat(row, 15)),
		Callsign:        rowString(row, 16),
		AirlineICAO:     rowString(row, 18),
	}
	if len(f.Number) >= 2 {
		f.AirlineIATA = f.Number[:2]
	}
	return f, true
}

func rowString(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func rowFloat(row []interface{}, i int) float64 {
	if i >= len(row) {
		return 0
	}
	switch v := row[i].(type) {
	case json.Number:
		f, _ := v.Float64()
		return f
	case bool:
		if v {
			return 1
		}
	}
	return 0
}
