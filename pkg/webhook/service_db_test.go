package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/test/util"
)

func TestMarkDeliveredDuplicateReturnsPriorOutcome(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client, nil, nil)
	ctx := t.Context()

	first, prior, err := svc.MarkDelivered(ctx, "slack", "ev-1", "acme", "payments")
	require.NoError(t, err)
	assert.True(t, first)
	assert.Empty(t, prior)

	svc.SetOutcome(ctx, "slack", "ev-1", "delivered")

	dup, prior, err := svc.MarkDelivered(ctx, "slack", "ev-1", "acme", "payments")
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, "delivered", prior)
}

func TestMarkDeliveredWithoutEventID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client, nil, nil)

	// Vendors without delivery ids are never treated as duplicates.
	for i := 0; i < 2; i++ {
		first, prior, err := svc.MarkDelivered(t.Context(), "generic", "", "acme", "payments")
		require.NoError(t, err)
		assert.True(t, first)
		assert.Empty(t, prior)
	}
}
