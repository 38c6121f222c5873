package manager

import (
	"fmt"

	"travelrecords-service/internal/domain/entity"
)

// Category identifies one of the three record kinds. Callers that do
// not care which entity they operate on dispatch on a Category instead
// of duck-typing across manager values.
type Category string

const (
	CategoryClient  Category = entity.RecordTypeClient
	CategoryAirline Category = entity.RecordTypeAirline
	CategoryFlight  Category = entity.RecordTypeFlight
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{CategoryClient, CategoryAirline, CategoryFlight}
}

// ParseCategory maps a category name to its Category value.
func ParseCategory(name string) (Category, error) {
	switch Category(name) {
	case CategoryClient, CategoryAirline, CategoryFlight:
		return Category(name), nil
	default:
		return "", fmt.Errorf("unknown record category %q", name)
	}
}

// RecordManager is the category-independent view of a manager. All
// records cross this interface in their external document form. For
// clients and airlines the selector carries the ID key ("client_id" /
// "airline_id"); for flights it is the natural-key mapping.
type RecordManager interface {
	Add(doc entity.Document) (entity.Document, error)
	All() []entity.Document
	Find(criteria entity.Document) []entity.Document
	Update(selector entity.Document, changes entity.Document) (entity.Document, error)
	Delete(selector entity.Document) error
}
