package manager

import (
	"time"

	"travelrecords-service/internal/domain/entity"
	"travelrecords-service/internal/domain/manager"
	"travelrecords-service/internal/infrastructure/persistence"
	"travelrecords-service/pkg/logger"
	"travelrecords-service/pkg/metrics"
)

// JSONLAirlineManager implements the manager.AirlineManager interface
// on a newline-delimited JSON backing file. Structurally it mirrors
// the client manager; airlines just carry fewer fields.
type JSONLAirlineManager struct {
	store    *persistence.Store
	logger   logger.Logger
	metrics  *metrics.Metrics
	airlines []*entity.Airline
	nextID   int
}

// NewJSONLAirlineManager creates an airline manager and loads the
// record set from the backing store.
func NewJSONLAirlineManager(store *persistence.Store, log logger.Logger, m *metrics.Metrics) manager.AirlineManager {
	mgr := &JSONLAirlineManager{
		store:   store,
		logger:  log,
		metrics: m,
		nextID:  1,
	}
	mgr.load()
	return mgr
}

func (m *JSONLAirlineManager) load() {
	docs, err := m.store.ReadAll()
	if err != nil {
		m.logger.Warn("Could not read airline records, starting empty",
			"path", m.store.Path(), "error", err)
	}

	highestID := 0
	for _, doc := range docs {
		if tag, _ := doc.String(entity.KeyRecordType); tag != entity.RecordTypeAirline {
			m.logger.Warn("Skipping record with unexpected type",
				"path", m.store.Path(), "record_type", doc[entity.KeyRecordType])
			continue
		}
		airline, err := entity.AirlineFromDocument(doc)
		if err != nil {
			m.logger.Warn("Skipping invalid airline record",
				"path", m.store.Path(), "error", err)
			continue
		}
		m.airlines = append(m.airlines, airline)
		if airline.ID > highestID {
			highestID = airline.ID
		}
	}
	m.nextID = highestID + 1
	m.metrics.RecordsLoaded.WithLabelValues("airline").Add(float64(len(m.airlines)))
}

func (m *JSONLAirlineManager) persist() error {
	docs := make([]entity.Document, 0, len(m.airlines))
	for _, airline := range m.airlines {
		docs = append(docs, airline.Document())
	}

	start := time.Now()
	if err := m.store.WriteAll(docs); err != nil {
		m.metrics.PersistFailures.WithLabelValues("airline").Inc()
		m.logger.Error("Failed to rewrite airline records",
			"path", m.store.Path(), "error", err)
		return &manager.PersistenceError{Path: m.store.Path(), Err: err}
	}
	m.metrics.PersistTime.Observe(time.Since(start).Seconds())
	return nil
}

func (m *JSONLAirlineManager) count(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.metrics.Operations.WithLabelValues("airline", operation, status).Inc()
}

func (m *JSONLAirlineManager) indexOf(id int) int {
	for i, airline := range m.airlines {
		if airline.ID == id {
			return i
		}
	}
	return -1
}

// AddAirline assigns the next ID, validates the document and appends
// the record. The kind tag must already be present and correct in the
// input; an airline document without its "Airline" tag is a usage
// error and refunds the ID.
func (m *JSONLAirlineManager) AddAirline(doc entity.Document) (airline *entity.Airline, err error) {
	defer func() { m.count("add", err) }()

	id := m.nextID
	m.nextID++

	merged := doc.Clone()
	merged["airline_id"] = id

	airline, err = entity.AirlineFromDocument(merged)
	if err != nil {
		m.nextID--
		return nil, err
	}

	m.airlines = append(m.airlines, airline)
	if err = m.persist(); err != nil {
		m.airlines = m.airlines[:len(m.airlines)-1]
		m.nextID--
		return nil, err
	}
	return airline, nil
}

// GetAirlineByID returns the airline with the given ID or ErrNotFound.
func (m *JSONLAirlineManager) GetAirlineByID(id int) (*entity.Airline, error) {
	if idx := m.indexOf(id); idx >= 0 {
		return m.airlines[idx], nil
	}
	return nil, manager.ErrNotFound
}

// GetAllAirlines returns a copy of the record set in insertion order.
func (m *JSONLAirlineManager) GetAllAirlines() []*entity.Airline {
	all := make([]*entity.Airline, len(m.airlines))
	copy(all, m.airlines)
	return all
}

// FindAirlines returns the airlines matching every criterion, with the
// same matching rules as client search.
func (m *JSONLAirlineManager) FindAirlines(criteria entity.Document) []*entity.Airline {
	if len(criteria) == 0 {
		return m.GetAllAirlines()
	}
	var results []*entity.Airline
	for _, airline := range m.airlines {
		a := airline
		if matchFields(func(name string) (interface{}, bool) {
			return entity.AirlineField(a, name)
		}, criteria) {
			results = append(results, airline)
		}
	}
	return results
}

// UpdateAirline merges the changed fields into the record with the
// given ID and persists the result.
func (m *JSONLAirlineManager) UpdateAirline(id int, changes entity.Document) (updated *entity.Airline, err error) {
	defer func() { m.count("update", err) }()

	idx := m.indexOf(id)
	if idx < 0 {
		return nil, manager.ErrNotFound
	}
	current := m.airlines[idx]
	currentDoc := current.Document()

	merged := currentDoc.Clone()
	changed := false
	for key, value := range changes {
		if key == "airline_id" || key == entity.KeyRecordType {
			continue
		}
		have, ok := currentDoc[key]
		if !ok {
			continue
		}
		if !valuesEqual(have, value) {
			merged[key] = value
			changed = true
		}
	}
	if !changed {
		return current, nil
	}

	updated, err = entity.AirlineFromDocument(merged)
	if err != nil {
		return nil, err
	}

	m.airlines[idx] = updated
	if err = m.persist(); err != nil {
		m.airlines[idx] = current
		return nil, err
	}
	return updated, nil
}

// DeleteAirline removes the record with the given ID and persists. A
// failed rewrite reinserts the record at its original position.
func (m *JSONLAirlineManager) DeleteAirline(id int) (err error) {
	defer func() { m.count("delete", err) }()

	idx := m.indexOf(id)
	if idx < 0 {
		return manager.ErrNotFound
	}
	removed := m.airlines[idx]
	m.airlines = append(m.airlines[:idx], m.airlines[idx+1:]...)

	if err = m.persist(); err != nil {
		restored := make([]*entity.Airline, 0, len(m.airlines)+1)
		restored = append(restored, m.airlines[:idx]...)
		restored = append(restored, removed)
		restored = append(restored, m.airlines[idx:]...)
		m.airlines = restored
		return err
	}
	return nil
}
