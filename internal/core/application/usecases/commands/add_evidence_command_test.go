package commands_test

import (
	"testing"

	"serviceops/internal/core/application/usecases/commands"
	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewAddEvidenceCommand(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		evidenceID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAddEvidenceCommand(evidenceID, orderID, evidence.PhotoBefore, "before.jpg")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, evidenceID, cmd.EvidenceID())
		require.Equal(t, orderID, cmd.OrderID())
		require.Equal(t, evidence.PhotoBefore, cmd.Kind())
		require.Equal(t, "before.jpg", cmd.FileName())
	})

	t.Run("invalid_evidence_id", func(t *testing.T) {
		_, err := commands.NewAddEvidenceCommand(kernel.UUID{}, kernel.NewUUID(), evidence.Document, "po.pdf")
		require.Error(t, err)
	})

	t.Run("invalid_order_id", func(t *testing.T) {
		_, err := commands.NewAddEvidenceCommand(kernel.NewUUID(), kernel.UUID{}, evidence.Document, "po.pdf")
		require.Error(t, err)
	})

	t.Run("invalid_kind", func(t *testing.T) {
		_, err := commands.NewAddEvidenceCommand(kernel.NewUUID(), kernel.NewUUID(), evidence.Kind(99), "po.pdf")
		require.Error(t, err)
	})

	t.Run("empty_file_name", func(t *testing.T) {
		_, err := commands.NewAddEvidenceCommand(kernel.NewUUID(), kernel.NewUUID(), evidence.Document, "")
		require.ErrorIs(t, err, commands.ErrFileNameIsRequired)
	})

	t.Run("zero_value_command_is_not_constructed", func(t *testing.T) {
		var cmd commands.AddEvidenceCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAddEvidenceCommandIsNotConstructed)
	})
}
