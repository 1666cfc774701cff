package queries_test

import (
	"testing"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/require"
)

// mockAggregateTracker is a no-op tracker for seeding test data outside a
// unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {}

func seedOrder(t *testing.T, sequence int64, company string, status serviceorder.Status) *serviceorder.ServiceOrder {
	t.Helper()

	number, err := kernel.NewOrderNumber(sequence)
	require.NoError(t, err)

	technician, physicalOrderNumber := "", ""
	if status.Phase() != serviceorder.PhaseCommercial {
		technician, physicalOrderNumber = "Laura Vega", "F-1204"
	}

	aggregate, err := serviceorder.RestoreServiceOrder(
		kernel.NewUUID(), number, company, "installation",
		"high", "", technician, physicalOrderNumber, nil, status, 0,
	)
	require.NoError(t, err)
	return aggregate
}
