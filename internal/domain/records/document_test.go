package records

import (
	"testing"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_SetTitle(t *testing.T) {
	doc, err := NewDocument("Policy schedule", "")
	require.NoError(t, err)

	assert.ErrorIs(t, doc.SetTitle("   "), shared.ErrInvalidInput)
	assert.Equal(t, "Policy schedule", doc.Title)

	require.NoError(t, doc.SetTitle(" Claim form "))
	assert.Equal(t, "Claim form", doc.Title)
}

func TestAuditLog_SetAction(t *testing.T) {
	entry, err := NewAuditLog("claim.create", "admin", "")
	require.NoError(t, err)

	assert.ErrorIs(t, entry.SetAction(""), shared.ErrInvalidInput)
	require.NoError(t, entry.SetAction(" claim.update "))
	assert.Equal(t, "claim.update", entry.Action)
}
