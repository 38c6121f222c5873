package manager

import (
	"time"

	"travelrecords-service/internal/domain/entity"
	"travelrecords-service/internal/domain/manager"
	"travelrecords-service/internal/infrastructure/persistence"
	"travelrecords-service/pkg/logger"
	"travelrecords-service/pkg/metrics"
)

// JSONLClientManager implements the manager.ClientManager interface on
// a newline-delimited JSON backing file. The full record set lives in
// memory; every mutation rewrites the file and rolls the memory back
// when the rewrite fails.
type JSONLClientManager struct {
	store   *persistence.Store
	logger  logger.Logger
	metrics *metrics.Metrics
	clients []*entity.Client
	nextID  int
}

// NewJSONLClientManager creates a client manager and loads the record
// set from the backing store. Load never fails: unreadable files and
// bad lines leave warnings, not errors.
func NewJSONLClientManager(store *persistence.Store, log logger.Logger, m *metrics.Metrics) manager.ClientManager {
	mgr := &JSONLClientManager{
		store:   store,
		logger:  log,
		metrics: m,
		nextID:  1,
	}
	mgr.load()
	return mgr
}

func (m *JSONLClientManager) load() {
	docs, err := m.store.ReadAll()
	if err != nil {
		m.logger.Warn("Could not read client records, starting empty",
			"path", m.store.Path(), "error", err)
	}

	highestID := 0
	for _, doc := range docs {
		if tag, _ := doc.String(entity.KeyRecordType); tag != entity.RecordTypeClient {
			m.logger.Warn("Skipping record with unexpected type",
				"path", m.store.Path(), "record_type", doc[entity.KeyRecordType])
			continue
		}
		client, err := entity.ClientFromDocument(doc)
		if err != nil {
			m.logger.Warn("Skipping invalid client record",
				"path", m.store.Path(), "error", err)
			continue
		}
		m.clients = append(m.clients, client)
		if client.ID > highestID {
			highestID = client.ID
		}
	}
	m.nextID = highestID + 1
	m.metrics.RecordsLoaded.WithLabelValues("client").Add(float64(len(m.clients)))
}

func (m *JSONLClientManager) persist() error {
	docs := make([]entity.Document, 0, len(m.clients))
	for _, client := range m.clients {
		docs = append(docs, client.Document())
	}

	start := time.Now()
	if err := m.store.WriteAll(docs); err != nil {
		m.metrics.PersistFailures.WithLabelValues("client").Inc()
		m.logger.Error("Failed to rewrite client records",
			"path", m.store.Path(), "error", err)
		return &manager.PersistenceError{Path: m.store.Path(), Err: err}
	}
	m.metrics.PersistTime.Observe(time.Since(start).Seconds())
	return nil
}

func (m *JSONLClientManager) count(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.metrics.Operations.WithLabelValues("client", operation, status).Inc()
}

func (m *JSONLClientManager) indexOf(id int) int {
	for i, client := range m.clients {
		if client.ID == id {
			return i
		}
	}
	return -1
}

// AddClient assigns the next ID, forces the kind tag, validates and
// appends the record. The ID is refunded when validation or the file
// rewrite fails, so a failed add never consumes an ID.
func (m *JSONLClientManager) AddClient(doc entity.Document) (client *entity.Client, err error) {
	defer func() { m.count("add", err) }()

	id := m.nextID
	m.nextID++

	merged := doc.Clone()
	merged["client_id"] = id
	merged[entity.KeyRecordType] = entity.RecordTypeClient

	client, err = entity.ClientFromDocument(merged)
	if err != nil {
		m.nextID--
		return nil, err
	}

	m.clients = append(m.clients, client)
	if err = m.persist(); err != nil {
		m.clients = m.clients[:len(m.clients)-1]
		m.nextID--
		return nil, err
	}
	return client, nil
}

// GetClientByID returns the client with the given ID or ErrNotFound.
func (m *JSONLClientManager) GetClientByID(id int) (*entity.Client, error) {
	if idx := m.indexOf(id); idx >= 0 {
		return m.clients[idx], nil
	}
	return nil, manager.ErrNotFound
}

// GetAllClients returns a copy of the record set in insertion order.
func (m *JSONLClientManager) GetAllClients() []*entity.Client {
	all := make([]*entity.Client, len(m.clients))
	copy(all, m.clients)
	return all
}

// FindClients returns the clients matching every criterion. Empty
// criteria returns all clients.
func (m *JSONLClientManager) FindClients(criteria entity.Document) []*entity.Client {
	if len(criteria) == 0 {
		return m.GetAllClients()
	}
	var results []*entity.Client
	for _, client := range m.clients {
		c := client
		if matchFields(func(name string) (interface{}, bool) {
			return entity.ClientField(c, name)
		}, criteria) {
			results = append(results, client)
		}
	}
	return results
}

// UpdateClient merges the changed fields into the record with the
// given ID and persists the result. The client_id and record_type keys
// in changes are ignored, as are keys the record does not have. When
// nothing actually differs the existing record is returned untouched.
func (m *JSONLClientManager) UpdateClient(id int, changes entity.Document) (updated *entity.Client, err error) {
	defer func() { m.count("update", err) }()

	idx := m.indexOf(id)
	if idx < 0 {
		return nil, manager.ErrNotFound
	}
	current := m.clients[idx]
	currentDoc := current.Document()

	merged := currentDoc.Clone()
	changed := false
	for key, value := range changes {
		if key == "client_id" || key == entity.KeyRecordType {
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

	updated, err = entity.ClientFromDocument(merged)
	if err != nil {
		return nil, err
	}

	m.clients[idx] = updated
	if err = m.persist(); err != nil {
		m.clients[idx] = current
		return nil, err
	}
	return updated, nil
}

// DeleteClient removes the record with the given ID and persists. A
// failed rewrite reinserts the record at its original position.
func (m *JSONLClientManager) DeleteClient(id int) (err error) {
	defer func() { m.count("delete", err) }()

	idx := m.indexOf(id)
	if idx < 0 {
		return manager.ErrNotFound
	}
	removed := m.clients[idx]
	m.clients = append(m.clients[:idx], m.clients[idx+1:]...)

	if err = m.persist(); err != nil {
		restored := make([]*entity.Client, 0, len(m.clients)+1)
		restored = append(restored, m.clients[:idx]...)
		restored = append(restored, removed)
		restored = append(restored, m.clients[idx:]...)
		m.clients = restored
		return err
	}
	return nil
}
