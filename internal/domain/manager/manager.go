package manager

import (
	"travelrecords-service/internal/domain/entity"
)

// ClientManager defines the interface for client record operations.
// Every mutating operation either completes in memory and on disk or
// leaves both unchanged.
type ClientManager interface {
	// AddClient assigns the next ID, validates the document and
	// appends the record. The assigned ID is refunded on any failure.
	AddClient(doc entity.Document) (*entity.Client, error)
	// GetClientByID returns the client with the given ID or
	// ErrNotFound.
	GetClientByID(id int) (*entity.Client, error)
	// GetAllClients returns a copy of the record set in insertion
	// order.
	GetAllClients() []*entity.Client
	// FindClients returns the clients matching every criterion.
	// String fields match as case-insensitive substrings, other
	// fields by exact value. Empty criteria returns all clients.
	FindClients(criteria entity.Document) []*entity.Client
	// UpdateClient merges the changed fields into the record with the
	// given ID. The id and kind-tag keys are never overwritten; an
	// update changing nothing is a no-op returning the existing
	// record.
	UpdateClient(id int, changes entity.Document) (*entity.Client, error)
	// DeleteClient removes the record with the given ID.
	DeleteClient(id int) error
}

// AirlineManager defines the interface for airline record operations.
type AirlineManager interface {
	AddAirline(doc entity.Document) (*entity.Airline, error)
	GetAirlineByID(id int) (*entity.Airline, error)
	GetAllAirlines() []*entity.Airline
	FindAirlines(criteria entity.Document) []*entity.Airline
	UpdateAirline(id int, changes entity.Document) (*entity.Airline, error)
	DeleteAirline(id int) error
}

// FlightManager defines the interface for flight record operations.
// Flights have no surrogate key; update and delete locate the record
// by a selector document matching the full natural-key tuple.
type FlightManager interface {
	// AddFlight validates that the client and airline references
	// resolve to existing records before accepting the flight.
	AddFlight(doc entity.Document) (*entity.Flight, error)
	GetAllFlights() []*entity.Flight
	// FindFlights matches by exact field equality, except a string
	// Date criterion which matches the full timestamp when longer
	// than a date, and the date component only otherwise.
	FindFlights(criteria entity.Document) []*entity.Flight
	// UpdateFlight re-validates the client and airline references
	// when the change touches them.
	UpdateFlight(selector entity.Document, changes entity.Document) (*entity.Flight, error)
	DeleteFlight(selector entity.Document) error
}
