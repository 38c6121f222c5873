package manager

import (
	"travelrecords-service/internal/domain/entity"
	"travelrecords-service/internal/domain/manager"
)

// Registry resolves a record category to the category-independent
// manager.RecordManager view of the matching manager. A caller such as
// a presentation layer selects a category by name and programs against
// one abstraction instead of duck-typing across the three managers.
type Registry struct {
	managers map[manager.Category]manager.RecordManager
}

// NewRegistry wires the three managers behind their Category.
func NewRegistry(clients manager.ClientManager, airlines manager.AirlineManager, flights manager.FlightManager) *Registry {
	return &Registry{
		managers: map[manager.Category]manager.RecordManager{
			manager.CategoryClient:  &clientAdapter{clients},
			manager.CategoryAirline: &airlineAdapter{airlines},
			manager.CategoryFlight:  &flightAdapter{flights},
		},
	}
}

// For returns the RecordManager for the given category.
func (r *Registry) For(category manager.Category) (manager.RecordManager, bool) {
	rm, ok := r.managers[category]
	return rm, ok
}

// selectorID extracts the integer ID a selector document must carry
// for the ID-keyed entities.
func selectorID(selector entity.Document, key string) (int, error) {
	id, ok := selector.Int(key)
	if !ok {
		return 0, &entity.ValidationError{Field: key, Reason: "must be an integer"}
	}
	return id, nil
}

type clientAdapter struct {
	clients manager.ClientManager
}

func (a *clientAdapter) Add(doc entity.Document) (entity.Document, error) {
	client, err := a.clients.AddClient(doc)
	if err != nil {
		return nil, err
	}
	return client.Document(), nil
}

func (a *clientAdapter) All() []entity.Document {
	clients := a.clients.GetAllClients()
	docs := make([]entity.Document, 0, len(clients))
	for _, client := range clients {
		docs = append(docs, client.Document())
	}
	return docs
}

func (a *clientAdapter) Find(criteria entity.Document) []entity.Document {
	matches := a.clients.FindClients(criteria)
	docs := make([]entity.Document, 0, len(matches))
	for _, client := range matches {
		docs = append(docs, client.Document())
	}
	return docs
}

func (a *clientAdapter) Update(selector entity.Document, changes entity.Document) (entity.Document, error) {
	id, err := selectorID(selector, "client_id")
	if err != nil {
		return nil, err
	}
	client, err := a.clients.UpdateClient(id, changes)
	if err != nil {
		return nil, err
	}
	return client.Document(), nil
}

func (a *clientAdapter) Delete(selector entity.Document) error {
	id, err := selectorID(selector, "client_id")
	if err != nil {
		return err
	}
	return a.clients.DeleteClient(id)
}

type airlineAdapter struct {
	airlines manager.AirlineManager
}

func (a *airlineAdapter) Add(doc entity.Document) (entity.Document, error) {
	airline, err := a.airlines.AddAirline(doc)
	if err != nil {
		return nil, err
	}
	return airline.Document(), nil
}

func (a *airlineAdapter) All() []entity.Document {
	airlines := a.airlines.GetAllAirlines()
	docs := make([]entity.Document, 0, len(airlines))
	for _, airline := range airlines {
		docs = append(docs, airline.Document())
	}
	return docs
}

func (a *airlineAdapter) Find(criteria entity.Document) []entity.Document {
	matches := a.airlines.FindAirlines(criteria)
	docs := make([]entity.Document, 0, len(matches))
	for _, airline := range matches {
		docs = append(docs, airline.Document())
	}
	return docs
}

func (a *airlineAdapter) Update(selector entity.Document, changes entity.Document) (entity.Document, error) {
	id, err := selectorID(selector, "airline_id")
	if err != nil {
		return nil, err
	}
	airline, err := a.airlines.UpdateAirline(id, changes)
	if err != nil {
		return nil, err
	}
	return airline.Document(), nil
}

func (a *airlineAdapter) Delete(selector entity.Document) error {
	id, err := selectorID(selector, "airline_id")
	if err != nil {
		return err
	}
	return a.airlines.DeleteAirline(id)
}

type flightAdapter struct {
	flights manager.FlightManager
}

func (a *flightAdapter) Add(doc entity.Document) (entity.Document, error) {
	flight, err := a.flights.AddFlight(doc)
	if err != nil {
		return nil, err
	}
	return flight.Document(), nil
}

func (a *flightAdapter) All() []entity.Document {
	flights := a.flights.GetAllFlights()
	docs := make([]entity.Document, 0, len(flights))
	for _, flight := range flights {
		docs = append(docs, flight.Document())
	}
	return docs
}

func (a *flightAdapter) Find(criteria entity.Document) []entity.Document {
	matches := a.flights.FindFlights(criteria)
	docs := make([]entity.Document, 0, len(matches))
	for _, flight := range matches {
		docs = append(docs, flight.Document())
	}
	return docs
}

func (a *flightAdapter) Update(selector entity.Document, changes entity.Document) (entity.Document, error) {
	flight, err := a.flights.UpdateFlight(selector, changes)
	if err != nil {
		return nil, err
	}
	return flight.Document(), nil
}

func (a *flightAdapter) Delete(selector entity.Document) error {
	return a.flights.DeleteFlight(selector)
}
