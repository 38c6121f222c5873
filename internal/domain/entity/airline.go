package entity

// Airline represents a single airline company record.
type Airline struct {
	ID          int
	CompanyName string
}

var airlineRequiredFields = []string{KeyRecordType, "company_name"}

// AirlineFromDocument builds an Airline from its external document
// form. The kind tag is required and must equal "Airline".
func AirlineFromDocument(doc Document) (*Airline, error) {
	for _, field := range airlineRequiredFields {
		if _, ok := doc[field]; !ok {
			return nil, NewMissingFieldError(field)
		}
	}
	if tag, ok := doc.String(KeyRecordType); !ok || tag != RecordTypeAirline {
		return nil, &ValidationError{Field: KeyRecordType, Reason: `must be "Airline"`}
	}

	id, err := identifier(doc, "airline_id")
	if err != nil {
		return nil, err
	}
	name, err := requireString(doc, "company_name")
	if err != nil {
		return nil, err
	}

	return &Airline{ID: id, CompanyName: name}, nil
}

// Document converts the airline to its external document form.
func (a *Airline) Document() Document {
	var id interface{}
	if a.ID != 0 {
		id = a.ID
	}
	return Document{
		"airline_id":   id,
		KeyRecordType:  RecordTypeAirline,
		"company_name": a.CompanyName,
	}
}

var airlineFields = map[string]func(*Airline) interface{}{
	"airline_id":   func(a *Airline) interface{} { return a.ID },
	KeyRecordType:  func(*Airline) interface{} { return RecordTypeAirline },
	"company_name": func(a *Airline) interface{} { return a.CompanyName },
}

// AirlineField returns the value of the named field, or false when no
// such field exists.
func AirlineField(a *Airline, name string) (interface{}, bool) {
	accessor, ok := airlineFields[name]
	if !ok {
		return nil, false
	}
	return accessor(a), true
}
