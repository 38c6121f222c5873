package manager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"travelrecords-service/internal/domain/entity"
	"travelrecords-service/internal/domain/manager"
	"travelrecords-service/internal/infrastructure/persistence"
	"travelrecords-service/pkg/logger"
	"travelrecords-service/pkg/metrics"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics("test", prometheus.NewRegistry())
}

// fixtures wires the three managers over backing files in a temp dir.
type fixtures struct {
	clientPath  string
	airlinePath string
	flightPath  string
	clients     manager.ClientManager
	airlines    manager.AirlineManager
	flights     manager.FlightManager
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	dir := t.TempDir()

	f := &fixtures{
		clientPath:  filepath.Join(dir, "client_record.jsonl"),
		airlinePath: filepath.Join(dir, "airline_record.jsonl"),
		flightPath:  filepath.Join(dir, "flight_record.jsonl"),
	}
	log := logger.NewNop()
	m := newTestMetrics()

	f.clients = NewJSONLClientManager(persistence.NewStore(f.clientPath, log), log, m)
	f.airlines = NewJSONLAirlineManager(persistence.NewStore(f.airlinePath, log), log, m)

	flights, err := NewJSONLFlightManager(persistence.NewStore(f.flightPath, log), f.clients, f.airlines, log, m)
	require.NoError(t, err)
	f.flights = flights
	return f
}

// blockStore makes the next rewrite of the backing file fail by
// putting a directory where the file belongs.
func blockStore(t *testing.T, path string) {
	t.Helper()
	os.Remove(path)
	require.NoError(t, os.Mkdir(path, 0o755))
}

func unblockStore(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.Remove(path))
}

func sampleClientDoc(name string) entity.Document {
	return entity.Document{
		"name":           name,
		"address_line_1": "123 Main St",
		"city":           "Testville",
		"state":          "ST",
		"zip_code":       "00000",
		"country":        "Testland",
		"phone_number":   "123456",
	}
}

func sampleAirlineDoc(company string) entity.Document {
	return entity.Document{
		entity.KeyRecordType: entity.RecordTypeAirline,
		"company_name":       company,
	}
}

func sampleFlightDoc(clientID, airlineID int) entity.Document {
	return entity.Document{
		entity.KeyRecordType:      entity.RecordTypeFlight,
		entity.FlightKeyClientID:  clientID,
		entity.FlightKeyAirlineID: airlineID,
		entity.FlightKeyDate:      "2025-04-05T14:30:00",
		entity.FlightKeyStartCity: "CityA",
		entity.FlightKeyEndCity:   "CityB",
	}
}
