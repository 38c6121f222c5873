package manager

import (
	"errors"
	"time"

	"travelrecords-service/internal/domain/entity"
	"travelrecords-service/internal/domain/manager"
	"travelrecords-service/internal/infrastructure/persistence"
	"travelrecords-service/pkg/logger"
	"travelrecords-service/pkg/metrics"
)

// JSONLFlightManager implements the manager.FlightManager interface on
// a newline-delimited JSON backing file. It holds read-only references
// to the client and airline managers to validate the foreign
// references of a flight at add and update time; it never mutates
// them. References are not re-checked afterwards, so deleting a
// referenced client or airline leaves a dangling flight.
type JSONLFlightManager struct {
	store    *persistence.Store
	clients  manager.ClientManager
	airlines manager.AirlineManager
	logger   logger.Logger
	metrics  *metrics.Metrics
	flights  []*entity.Flight
}

// NewJSONLFlightManager creates a flight manager and loads the record
// set from the backing store. Both managers are required; constructing
// without them is a usage error.
func NewJSONLFlightManager(
	store *persistence.Store,
	clients manager.ClientManager,
	airlines manager.AirlineManager,
	log logger.Logger,
	m *metrics.Metrics,
) (manager.FlightManager, error) {
	if clients == nil {
		return nil, errors.New("flight manager requires a client manager")
	}
	if airlines == nil {
		return nil, errors.New("flight manager requires an airline manager")
	}
	mgr := &JSONLFlightManager{
		store:    store,
		clients:  clients,
		airlines: airlines,
		logger:   log,
		metrics:  m,
	}
	mgr.load()
	return mgr, nil
}

func (m *JSONLFlightManager) load() {
	docs, err := m.store.ReadAll()
	if err != nil {
		m.logger.Warn("Could not read flight records, starting empty",
			"path", m.store.Path(), "error", err)
	}

	for _, doc := range docs {
		if tag, _ := doc.String(entity.KeyRecordType); tag != entity.RecordTypeFlight {
			m.logger.Warn("Skipping record with unexpected type",
				"path", m.store.Path(), "record_type", doc[entity.KeyRecordType])
			continue
		}
		flight, err := entity.FlightFromDocument(doc)
		if err != nil {
			m.logger.Warn("Skipping invalid flight record",
				"path", m.store.Path(), "error", err)
			continue
		}
		m.flights = append(m.flights, flight)
	}
	m.metrics.RecordsLoaded.WithLabelValues("flight").Add(float64(len(m.flights)))
}

func (m *JSONLFlightManager) persist() error {
	docs := make([]entity.Document, 0, len(m.flights))
	for _, flight := range m.flights {
		docs = append(docs, flight.Document())
	}

	start := time.Now()
	if err := m.store.WriteAll(docs); err != nil {
		m.metrics.PersistFailures.WithLabelValues("flight").Inc()
		m.logger.Error("Failed to rewrite flight records",
			"path", m.store.Path(), "error", err)
		return &manager.PersistenceError{Path: m.store.Path(), Err: err}
	}
	m.metrics.PersistTime.Observe(time.Since(start).Seconds())
	return nil
}

func (m *JSONLFlightManager) count(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.metrics.Operations.WithLabelValues("flight", operation, status).Inc()
}

// indexOf locates a flight by full-field equality against its external
// document. Flights have no surrogate key, so the selector is the
// natural-key mapping; duplicate tuples always resolve to the first.
func (m *JSONLFlightManager) indexOf(selector entity.Document) int {
	for i, flight := range m.flights {
		doc := flight.Document()
		matched := true
		for key, want := range selector {
			have, ok := doc[key]
			if !ok || !valuesEqual(have, want) {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

// resolveClient checks that a client reference is an integer naming an
// existing client record.
func (m *JSONLFlightManager) resolveClient(doc entity.Document) (int, error) {
	id, ok := doc.Int(entity.FlightKeyClientID)
	if !ok {
		return 0, &entity.ValidationError{Field: entity.FlightKeyClientID, Reason: "must be an integer"}
	}
	if _, err := m.clients.GetClientByID(id); err != nil {
		return 0, &manager.ReferentialError{Field: entity.FlightKeyClientID, ID: id}
	}
	return id, nil
}

func (m *JSONLFlightManager) resolveAirline(doc entity.Document) (int, error) {
	id, ok := doc.Int(entity.FlightKeyAirlineID)
	if !ok {
		return 0, &entity.ValidationError{Field: entity.FlightKeyAirlineID, Reason: "must be an integer"}
	}
	if _, err := m.airlines.GetAirlineByID(id); err != nil {
		return 0, &manager.ReferentialError{Field: entity.FlightKeyAirlineID, ID: id}
	}
	return id, nil
}

// AddFlight validates that every required field is present and that
// the client and airline references resolve, then appends and
// persists. A rejected flight mutates nothing.
func (m *JSONLFlightManager) AddFlight(doc entity.Document) (flight *entity.Flight, err error) {
	defer func() { m.count("add", err) }()

	for _, field := range entity.FlightRequiredFields {
		if _, ok := doc[field]; !ok {
			err = entity.NewMissingFieldError(field)
			return nil, err
		}
	}
	if _, err = m.resolveClient(doc); err != nil {
		return nil, err
	}
	if _, err = m.resolveAirline(doc); err != nil {
		return nil, err
	}

	flight, err = entity.FlightFromDocument(doc)
	if err != nil {
		return nil, err
	}

	m.flights = append(m.flights, flight)
	if err = m.persist(); err != nil {
		m.flights = m.flights[:len(m.flights)-1]
		return nil, err
	}
	return flight, nil
}

// GetAllFlights returns a copy of the record set in insertion order.
func (m *JSONLFlightManager) GetAllFlights() []*entity.Flight {
	all := make([]*entity.Flight, len(m.flights))
	copy(all, m.flights)
	return all
}

// FindFlights returns the flights matching every criterion by exact
// field equality, except the Date field: a string criterion longer
// than a plain date must equal the full serialized timestamp, a plain
// date criterion matches on the date component only, and an
// unparseable date criterion matches nothing. Empty criteria returns
// all flights.
func (m *JSONLFlightManager) FindFlights(criteria entity.Document) []*entity.Flight {
	if len(criteria) == 0 {
		return m.GetAllFlights()
	}
	var results []*entity.Flight
	for _, flight := range m.flights {
		if m.flightMatches(flight, criteria) {
			results = append(results, flight)
		}
	}
	return results
}

func (m *JSONLFlightManager) flightMatches(flight *entity.Flight, criteria entity.Document) bool {
	doc := flight.Document()
	for key, want := range criteria {
		if key == entity.FlightKeyDate {
			if wantString, ok := want.(string); ok {
				if !matchFlightDate(flight.DepartureTime, wantString) {
					return false
				}
				continue
			}
		}
		have, ok := doc[key]
		if !ok || !valuesEqual(have, want) {
			return false
		}
	}
	return true
}

// matchFlightDate compares a string date criterion against a
// departure time. Anything longer than "YYYY-MM-DD" is treated as a
// full timestamp and must match the serialized form exactly.
func matchFlightDate(departure time.Time, criterion string) bool {
	if len(criterion) > len(entity.FlightDateLayout) {
		return criterion == departure.Format(entity.FlightTimeLayout)
	}
	wanted, err := time.Parse(entity.FlightDateLayout, criterion)
	if err != nil {
		return false
	}
	year, month, day := departure.Date()
	wantYear, wantMonth, wantDay := wanted.Date()
	return year == wantYear && month == wantMonth && day == wantDay
}

// UpdateFlight locates the unique record matching the selector,
// merges the changes, re-validates a changed client or airline
// reference and persists. A failed rewrite reverts to the original
// record. Changing any natural-key field changes the record's own
// identity.
func (m *JSONLFlightManager) UpdateFlight(selector entity.Document, changes entity.Document) (updated *entity.Flight, err error) {
	defer func() { m.count("update", err) }()

	idx := m.indexOf(selector)
	if idx < 0 {
		return nil, manager.ErrNotFound
	}
	current := m.flights[idx]
	currentDoc := current.Document()

	merged := currentDoc.Clone()
	changed := false
	for key, value := range changes {
		have, ok := currentDoc[key]
		if !ok || !valuesEqual(have, value) {
			merged[key] = value
			changed = true
		}
	}
	if !changed {
		return current, nil
	}

	updated, err = entity.FlightFromDocument(merged)
	if err != nil {
		return nil, err
	}
	if updated.ClientID != current.ClientID {
		if _, err = m.resolveClient(merged); err != nil {
			return nil, err
		}
	}
	if updated.AirlineID != current.AirlineID {
		if _, err = m.resolveAirline(merged); err != nil {
			return nil, err
		}
	}

	m.flights[idx] = updated
	if err = m.persist(); err != nil {
		m.flights[idx] = current
		return nil, err
	}
	return updated, nil
}

// DeleteFlight removes the record matching the selector and persists.
// A failed rewrite reinserts the record at its original position.
func (m *JSONLFlightManager) DeleteFlight(selector entity.Document) (err error) {
	defer func() { m.count("delete", err) }()

	idx := m.indexOf(selector)
	if idx < 0 {
		return manager.ErrNotFound
	}
	removed := m.flights[idx]
	m.flights = append(m.flights[:idx], m.flights[idx+1:]...)

	if err = m.persist(); err != nil {
		restored := make([]*entity.Flight, 0, len(m.flights)+1)
		restored = append(restored, m.flights[:idx]...)
		restored = append(restored, removed)
		restored = append(restored, m.flights[idx:]...)
		m.flights = restored
		return err
	}
	return nil
}
