package kernel_test

import (
	"testing"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("generates_valid_uuid", func(t *testing.T) {
		// When
		id := kernel.NewUUID()

		// Then
		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("generates_unique_uuids", func(t *testing.T) {
		// When
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		// Then
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses_canonical_format", func(t *testing.T) {
		// Given
		raw := "550e8400-e29b-41d4-a716-446655440000"

		// When
		id, err := kernel.UUIDFromString(raw)

		// Then
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("rejects_invalid_format", func(t *testing.T) {
		// When
		_, err := kernel.UUIDFromString("not-a-uuid")

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trips_through_bytes", func(t *testing.T) {
		// Given
		original := kernel.NewUUID()
		raw := original.Bytes()

		// When
		restored, err := kernel.UUIDFromBytes(raw[:])

		// Then
		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		// When
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		// Then
		require.Error(t, err)
	})

	t.Run("rejects_nil_uuid_bytes", func(t *testing.T) {
		// When
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed_uuid_is_valid", func(t *testing.T) {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
	})

	t.Run("zero_value_uuid_is_invalid", func(t *testing.T) {
		var id kernel.UUID
		err := id.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("copies_are_equal", func(t *testing.T) {
		id := kernel.NewUUID()
		idCopy := id
		assert.True(t, id.IsEqual(idCopy))
	})

	t.Run("distinct_uuids_are_not_equal", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}
