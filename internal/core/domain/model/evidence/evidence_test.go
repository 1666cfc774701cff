package evidence_test

import (
	"testing"
	"time"

	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uploadedAt = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func newTestEvidence(t *testing.T, kind evidence.Kind) *evidence.Evidence {
	t.Helper()
	record, err := evidence.NewEvidence(
		kernel.NewUUID(), kernel.NewUUID(), kind, "unit-48-front.jpg", uploadedAt,
	)
	require.NoError(t, err)
	return record
}

func TestNewEvidence(t *testing.T) {
	t.Run("creates_record", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		record, err := evidence.NewEvidence(id, orderID, evidence.PhotoBefore, "before.jpg", uploadedAt)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.Equal(t, id, record.ID())
		assert.Equal(t, orderID, record.OrderID())
		assert.Equal(t, evidence.PhotoBefore, record.Kind())
		assert.Equal(t, "before.jpg", record.FileName())
		assert.Equal(t, uploadedAt, record.UploadedAt())
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		validID := kernel.NewUUID()
		validOrderID := kernel.NewUUID()

		testCases := []struct {
			name  string
			setup func() error
		}{
			{
				name: "zero_value_id",
				setup: func() error {
					_, err := evidence.NewEvidence(kernel.UUID{}, validOrderID, evidence.Document, "a.pdf", uploadedAt)
					return err
				},
			},
			{
				name: "zero_value_order_id",
				setup: func() error {
					_, err := evidence.NewEvidence(validID, kernel.UUID{}, evidence.Document, "a.pdf", uploadedAt)
					return err
				},
			},
			{
				name: "unknown_kind",
				setup: func() error {
					_, err := evidence.NewEvidence(validID, validOrderID, evidence.KindUnknown, "a.pdf", uploadedAt)
					return err
				},
			},
			{
				name: "empty_file_name",
				setup: func() error {
					_, err := evidence.NewEvidence(validID, validOrderID, evidence.Document, "", uploadedAt)
					return err
				},
			},
			{
				name: "zero_uploaded_at",
				setup: func() error {
					_, err := evidence.NewEvidence(validID, validOrderID, evidence.Document, "a.pdf", time.Time{})
					return err
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Error(t, tc.setup())
			})
		}
	})
}

func TestEvidence_Validate(t *testing.T) {
	t.Run("constructed_record_is_valid", func(t *testing.T) {
		require.NoError(t, newTestEvidence(t, evidence.Document).Validate())
	})

	t.Run("zero_value_record_is_invalid", func(t *testing.T) {
		var record evidence.Evidence
		require.ErrorIs(t, record.Validate(), evidence.ErrEvidenceIsNotConstructed)
	})

	t.Run("nil_record_is_invalid", func(t *testing.T) {
		var record *evidence.Evidence
		require.ErrorIs(t, record.Validate(), evidence.ErrEvidenceIsNotConstructed)
	})
}

func TestKind(t *testing.T) {
	t.Run("string_representations", func(t *testing.T) {
		assert.Equal(t, "document", evidence.Document.String())
		assert.Equal(t, "photo_before", evidence.PhotoBefore.String())
		assert.Equal(t, "photo_after", evidence.PhotoAfter.String())
		assert.Equal(t, "unknown", evidence.KindUnknown.String())
		assert.Equal(t, "unknown", evidence.Kind(99).String())
	})

	t.Run("from_string_round_trip", func(t *testing.T) {
		for _, kind := range []evidence.Kind{evidence.Document, evidence.PhotoBefore, evidence.PhotoAfter} {
			parsed, err := evidence.KindFromString(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("from_string_rejects_unknown", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "photo", "PhotoBefore"} {
			_, err := evidence.KindFromString(raw)
			require.Error(t, err, "input %q", raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, evidence.Document.Validate())
		require.NoError(t, evidence.PhotoAfter.Validate())
		require.Error(t, evidence.KindUnknown.Validate())
		require.Error(t, evidence.Kind(42).Validate())
	})
}

func TestCountOfKinds(t *testing.T) {
	records := []*evidence.Evidence{
		newTestEvidence(t, evidence.Document),
		newTestEvidence(t, evidence.PhotoBefore),
		newTestEvidence(t, evidence.PhotoBefore),
		newTestEvidence(t, evidence.PhotoAfter),
	}

	assert.Equal(t, 1, evidence.CountOfKinds(records, evidence.Document))
	assert.Equal(t, 2, evidence.CountOfKinds(records, evidence.PhotoBefore))
	assert.Equal(t, 3, evidence.CountOfKinds(records, evidence.PhotoBefore, evidence.PhotoAfter))
	assert.Equal(t, 0, evidence.CountOfKinds(nil, evidence.Document))
}
