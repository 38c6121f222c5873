package entity

import (
	"time"
)

// External document keys for flight records. They deliberately differ
// in case and spacing from the internal field names; the backing files
// use exactly these.
const (
	FlightKeyClientID  = "Client_ID"
	FlightKeyAirlineID = "Airline_ID"
	FlightKeyDate      = "Date"
	FlightKeyStartCity = "Start City"
	FlightKeyEndCity   = "End City"
)

// FlightTimeLayout is the persisted form of a flight's departure time.
const FlightTimeLayout = "2006-01-02T15:04:05"

// FlightDateLayout is the date-only form accepted by find criteria.
const FlightDateLayout = "2006-01-02"

// flightTimeLayouts are the ISO-8601 shapes accepted when parsing.
var flightTimeLayouts = []string{
	FlightTimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	FlightDateLayout,
}

// Flight represents a booked flight. Flights carry no surrogate ID:
// a flight is identified solely by the tuple of client reference,
// airline reference, departure time, start city and end city. Two
// flights with an identical tuple are indistinguishable.
type Flight struct {
	ClientID      int
	AirlineID     int
	DepartureTime time.Time
	StartCity     string
	EndCity       string
}

// FlightRequiredFields are the document keys a flight document must
// carry; there is no optional field.
var FlightRequiredFields = []string{
	KeyRecordType,
	FlightKeyClientID,
	FlightKeyAirlineID,
	FlightKeyDate,
	FlightKeyStartCity,
	FlightKeyEndCity,
}

// ParseFlightTime parses an ISO-8601 date-time string in any of the
// accepted shapes.
func ParseFlightTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range flightTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FlightFromDocument builds a Flight from its external document form.
// Both references must be integers, the date must parse as ISO-8601,
// and both cities must be non-empty strings.
func FlightFromDocument(doc Document) (*Flight, error) {
	for _, field := range FlightRequiredFields {
		if _, ok := doc[field]; !ok {
			return nil, NewMissingFieldError(field)
		}
	}
	if tag, ok := doc.String(KeyRecordType); !ok || tag != RecordTypeFlight {
		return nil, &ValidationError{Field: KeyRecordType, Reason: `must be "Flight"`}
	}

	clientID, ok := doc.Int(FlightKeyClientID)
	if !ok {
		return nil, &ValidationError{Field: FlightKeyClientID, Reason: "must be an integer"}
	}
	airlineID, ok := doc.Int(FlightKeyAirlineID)
	if !ok {
		return nil, &ValidationError{Field: FlightKeyAirlineID, Reason: "must be an integer"}
	}

	rawDate, ok := doc.String(FlightKeyDate)
	if !ok {
		return nil, &ValidationError{Field: FlightKeyDate, Reason: "must be an ISO-8601 date-time string"}
	}
	departure, err := ParseFlightTime(rawDate)
	if err != nil {
		return nil, &ValidationError{Field: FlightKeyDate, Reason: "not a parseable ISO-8601 date-time"}
	}

	startCity, err := requireString(doc, FlightKeyStartCity)
	if err != nil {
		return nil, err
	}
	endCity, err := requireString(doc, FlightKeyEndCity)
	if err != nil {
		return nil, err
	}

	return &Flight{
		ClientID:      clientID,
		AirlineID:     airlineID,
		DepartureTime: departure,
		StartCity:     startCity,
		EndCity:       endCity,
	}, nil
}

// Document converts the flight to its external document form. The
// departure time is serialized at second precision without a zone
// offset, matching the persisted layout.
func (f *Flight) Document() Document {
	return Document{
		KeyRecordType:      RecordTypeFlight,
		FlightKeyClientID:  f.ClientID,
		FlightKeyAirlineID: f.AirlineID,
		FlightKeyDate:      f.DepartureTime.Format(FlightTimeLayout),
		FlightKeyStartCity: f.StartCity,
		FlightKeyEndCity:   f.EndCity,
	}
}

var flightFields = map[string]func(*Flight) interface{}{
	KeyRecordType:      func(*Flight) interface{} { return RecordTypeFlight },
	FlightKeyClientID:  func(f *Flight) interface{} { return f.ClientID },
	FlightKeyAirlineID: func(f *Flight) interface{} { return f.AirlineID },
	FlightKeyDate:      func(f *Flight) interface{} { return f.DepartureTime },
	FlightKeyStartCity: func(f *Flight) interface{} { return f.StartCity },
	FlightKeyEndCity:   func(f *Flight) interface{} { return f.EndCity },
}

// FlightField returns the value of the named field, or false when no
// such field exists. The Date field yields the time.Time value, not
// its serialized form.
func FlightField(f *Flight, name string) (interface{}, bool) {
	accessor, ok := flightFields[name]
	if !ok {
		return nil, false
	}
	return accessor(f), true
}
