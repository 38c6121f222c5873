package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientDocument() Document {
	return Document{
		"client_id":      1,
		KeyRecordType:    RecordTypeClient,
		"name":           "Alice Wonderland",
		"address_line_1": "123 Rabbit Hole Lane",
		"address_line_2": "Apt 1A",
		"city":           "Curious City",
		"state":          "WONDER",
		"zip_code":       "12345",
		"country":        "Wonderland",
		"phone_number":   "555-ALICE",
	}
}

func TestClientFromDocument(t *testing.T) {
	client, err := ClientFromDocument(validClientDocument())
	require.NoError(t, err)

	assert.Equal(t, 1, client.ID)
	assert.Equal(t, "Alice Wonderland", client.Name)
	assert.Equal(t, "Apt 1A", client.AddressLine2)
	assert.Equal(t, "", client.AddressLine3)
	assert.Equal(t, "555-ALICE", client.PhoneNumber)
}

func TestClientFromDocumentMissingField(t *testing.T) {
	for _, field := range []string{"name", "address_line_1", "city", "state", "zip_code", "country", "phone_number"} {
		doc := validClientDocument()
		delete(doc, field)

		_, err := ClientFromDocument(doc)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "field %s", field)
		assert.Equal(t, field, validationErr.Field)
	}
}

func TestClientFromDocumentEmptyRequiredString(t *testing.T) {
	doc := validClientDocument()
	doc["name"] = ""

	_, err := ClientFromDocument(doc)
	assert.Error(t, err)
}

func TestClientFromDocumentNonIntegerID(t *testing.T) {
	doc := validClientDocument()
	doc["client_id"] = "one"

	_, err := ClientFromDocument(doc)
	assert.Error(t, err)
}

func TestClientFromDocumentFloatID(t *testing.T) {
	// JSON decoding produces float64 for every number
	doc := validClientDocument()
	doc["client_id"] = float64(7)

	client, err := ClientFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 7, client.ID)
}

func TestClientFromDocumentWrongRecordType(t *testing.T) {
	doc := validClientDocument()
	doc[KeyRecordType] = RecordTypeAirline

	_, err := ClientFromDocument(doc)
	assert.Error(t, err)
}

func TestClientDocumentRoundTrip(t *testing.T) {
	client, err := ClientFromDocument(validClientDocument())
	require.NoError(t, err)

	doc := client.Document()
	again, err := ClientFromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, doc, again.Document())
	assert.Equal(t, client, again)
}

func TestClientDocumentNullIDWhenUnassigned(t *testing.T) {
	doc := validClientDocument()
	delete(doc, "client_id")

	client, err := ClientFromDocument(doc)
	require.NoError(t, err)
	assert.Nil(t, client.Document()["client_id"])
}

func TestClientField(t *testing.T) {
	client, err := ClientFromDocument(validClientDocument())
	require.NoError(t, err)

	city, ok := ClientField(client, "city")
	require.True(t, ok)
	assert.Equal(t, "Curious City", city)

	id, ok := ClientField(client, "client_id")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = ClientField(client, "favorite_color")
	assert.False(t, ok)
}
