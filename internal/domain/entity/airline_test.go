package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirlineFromDocument(t *testing.T) {
	airline, err := AirlineFromDocument(Document{
		"airline_id":   201,
		KeyRecordType:  RecordTypeAirline,
		"company_name": "Galaxy Airlines",
	})
	require.NoError(t, err)

	assert.Equal(t, 201, airline.ID)
	assert.Equal(t, "Galaxy Airlines", airline.CompanyName)
}

func TestAirlineFromDocumentMissingFields(t *testing.T) {
	_, err := AirlineFromDocument(Document{KeyRecordType: RecordTypeAirline})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "company_name", validationErr.Field)

	_, err = AirlineFromDocument(Document{"company_name": "Acme Air"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, KeyRecordType, validationErr.Field)
}

func TestAirlineFromDocumentRecordTypeEnforced(t *testing.T) {
	_, err := AirlineFromDocument(Document{
		KeyRecordType:  "Airplane",
		"company_name": "Acme Air",
	})
	assert.Error(t, err)
}

func TestAirlineFromDocumentEmptyCompanyName(t *testing.T) {
	_, err := AirlineFromDocument(Document{
		KeyRecordType:  RecordTypeAirline,
		"company_name": "",
	})
	assert.Error(t, err)
}

func TestAirlineDocumentRoundTrip(t *testing.T) {
	airline := &Airline{ID: 7, CompanyName: "Cosmic Cruiselines"}

	doc := airline.Document()
	again, err := AirlineFromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, doc, again.Document())
	assert.Equal(t, airline, again)
}

func TestAirlineField(t *testing.T) {
	airline := &Airline{ID: 3, CompanyName: "DemoAir"}

	name, ok := AirlineField(airline, "company_name")
	require.True(t, ok)
	assert.Equal(t, "DemoAir", name)

	_, ok = AirlineField(airline, "fleet_size")
	assert.False(t, ok)
}
