package manager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrecords-service/internal/domain/entity"
	"travelrecords-service/internal/domain/manager"
	"travelrecords-service/internal/infrastructure/persistence"
	"travelrecords-service/pkg/logger"
)

func TestAddAirlineAssignsSequentialIDs(t *testing.T) {
	f := newFixtures(t)

	first, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := f.airlines.AddAirline(sampleAirlineDoc("DemoAir"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestAddAirlineRequiresRecordType(t *testing.T) {
	f := newFixtures(t)

	_, err := f.airlines.AddAirline(entity.Document{"company_name": "Acme Air"})
	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, entity.KeyRecordType, validationErr.Field)
	assert.Empty(t, f.airlines.GetAllAirlines())

	// the refused add refunded its ID
	airline, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)
	assert.Equal(t, 1, airline.ID)
}

func TestAddAirlineThenDeleteLeavesEmpty(t *testing.T) {
	f := newFixtures(t)

	added, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)

	require.NoError(t, f.airlines.DeleteAirline(added.ID))
	assert.Empty(t, f.airlines.GetAllAirlines())
}

func TestAirlineIDsIncreaseAcrossDeletes(t *testing.T) {
	f := newFixtures(t)

	_, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)
	second, err := f.airlines.AddAirline(sampleAirlineDoc("DemoAir"))
	require.NoError(t, err)

	require.NoError(t, f.airlines.DeleteAirline(second.ID))

	third, err := f.airlines.AddAirline(sampleAirlineDoc("Galaxy Airlines"))
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestGetAirlineByID(t *testing.T) {
	f := newFixtures(t)
	added, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)

	found, err := f.airlines.GetAirlineByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, found)

	_, err = f.airlines.GetAirlineByID(42)
	assert.ErrorIs(t, err, manager.ErrNotFound)
}

func TestFindAirlines(t *testing.T) {
	f := newFixtures(t)
	_, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)
	_, err = f.airlines.AddAirline(sampleAirlineDoc("Galaxy Airlines"))
	require.NoError(t, err)

	matches := f.airlines.FindAirlines(entity.Document{"company_name": "galaxy"})
	require.Len(t, matches, 1)
	assert.Equal(t, "Galaxy Airlines", matches[0].CompanyName)

	assert.Len(t, f.airlines.FindAirlines(entity.Document{}), 2)
}

func TestUpdateAirline(t *testing.T) {
	f := newFixtures(t)
	added, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)

	updated, err := f.airlines.UpdateAirline(added.ID, entity.Document{"company_name": "Acme Airways"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Airways", updated.CompanyName)
	assert.Equal(t, added.ID, updated.ID)

	_, err = f.airlines.UpdateAirline(42, entity.Document{"company_name": "Ghost Air"})
	assert.ErrorIs(t, err, manager.ErrNotFound)
}

func TestUpdateAirlinePersistFailureRollsBack(t *testing.T) {
	f := newFixtures(t)
	added, err := f.airlines.AddAirline(sampleAirlineDoc("Acme Air"))
	require.NoError(t, err)

	blockStore(t, f.airlinePath)
	_, err = f.airlines.UpdateAirline(added.ID, entity.Document{"company_name": "Acme Airways"})
	var persistErr *manager.PersistenceError
	require.ErrorAs(t, err, &persistErr)

	found, err := f.airlines.GetAirlineByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Air", found.CompanyName)
}

func TestLoadAirlinesSkipsWrongRecordType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "airline_record.jsonl")
	content := `{"airline_id": 1, "record_type": "Airline", "company_name": "Acme Air"}
{"client_id": 2, "record_type": "Client", "name": "Stray Client"}
{"airline_id": 3, "record_type": "Airline", "company_name": ""}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	log := logger.NewNop()
	airlines := NewJSONLAirlineManager(persistence.NewStore(path, log), log, newTestMetrics())

	all := airlines.GetAllAirlines()
	require.Len(t, all, 1)
	assert.Equal(t, "Acme Air", all[0].CompanyName)
}
