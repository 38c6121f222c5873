package entity

// Client represents a single travel agency client. Values are fixed at
// construction; an update produces a new record.
type Client struct {
	ID           int
	Name         string
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	City         string
	State        string
	ZipCode      string
	Country      string
	PhoneNumber  string
}

// clientRequiredFields are the document keys a client document must
// carry. The identifier and the optional address lines are not in the
// list; the manager assigns the ID.
var clientRequiredFields = []string{
	"name", "address_line_1", "city", "state", "zip_code", "country", "phone_number",
}

// ClientFromDocument builds a Client from its external document form.
// Every required field must be present and a non-empty string, and the
// identifier, when present, must be an integer.
func ClientFromDocument(doc Document) (*Client, error) {
	for _, field := range clientRequiredFields {
		if _, ok := doc[field]; !ok {
			return nil, NewMissingFieldError(field)
		}
	}
	if err := checkRecordType(doc, RecordTypeClient); err != nil {
		return nil, err
	}

	id, err := identifier(doc, "client_id")
	if err != nil {
		return nil, err
	}

	client := &Client{ID: id}
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"name", &client.Name},
		{"address_line_1", &client.AddressLine1},
		{"city", &client.City},
		{"state", &client.State},
		{"zip_code", &client.ZipCode},
		{"country", &client.Country},
		{"phone_number", &client.PhoneNumber},
	} {
		parsed, err := requireString(doc, field.name)
		if err != nil {
			return nil, err
		}
		*field.value = parsed
	}
	client.AddressLine2 = optionalString(doc, "address_line_2")
	client.AddressLine3 = optionalString(doc, "address_line_3")

	return client, nil
}

// Document converts the client to its external document form with the
// fixed persistence key names.
func (c *Client) Document() Document {
	var id interface{}
	if c.ID != 0 {
		id = c.ID
	}
	return Document{
		"client_id":      id,
		KeyRecordType:    RecordTypeClient,
		"name":           c.Name,
		"address_line_1": c.AddressLine1,
		"address_line_2": c.AddressLine2,
		"address_line_3": c.AddressLine3,
		"city":           c.City,
		"state":          c.State,
		"zip_code":       c.ZipCode,
		"country":        c.Country,
		"phone_number":   c.PhoneNumber,
	}
}

// clientFields maps external field names to typed accessors. Built
// once, it replaces runtime reflection for generic search and display.
var clientFields = map[string]func(*Client) interface{}{
	"client_id":      func(c *Client) interface{} { return c.ID },
	KeyRecordType:    func(*Client) interface{} { return RecordTypeClient },
	"name":           func(c *Client) interface{} { return c.Name },
	"address_line_1": func(c *Client) interface{} { return c.AddressLine1 },
	"address_line_2": func(c *Client) interface{} { return c.AddressLine2 },
	"address_line_3": func(c *Client) interface{} { return c.AddressLine3 },
	"city":           func(c *Client) interface{} { return c.City },
	"state":          func(c *Client) interface{} { return c.State },
	"zip_code":       func(c *Client) interface{} { return c.ZipCode },
	"country":        func(c *Client) interface{} { return c.Country },
	"phone_number":   func(c *Client) interface{} { return c.PhoneNumber },
}

// ClientField returns the value of the named field, or false when no
// such field exists.
func ClientField(c *Client, name string) (interface{}, bool) {
	accessor, ok := clientFields[name]
	if !ok {
		return nil, false
	}
	return accessor(c), true
}
