package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/test/util"
)

func TestClaimDueSingleClaim(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := t.Context()

	job, err := s.CreateJob(ctx, "acme", "payments", "agent_run", "*/5 * * * *", map[string]interface{}{
		"agent":  "incident-responder",
		"prompt": "daily check",
	})
	require.NoError(t, err)

	// New jobs fire in the future; backdate to make it due.
	err = client.ScheduledJob.UpdateOneID(job.ID).
		SetNextFireAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := s.ClaimDue(ctx, "worker-a", 10, DefaultLockTTL)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, job.ID, claimed[0].ID)
	assert.Equal(t, "worker-a", *claimed[0].LockOwner)

	// A second worker polling sees nothing while the claim holds.
	claimed, err = s.ClaimDue(ctx, "worker-b", 10, DefaultLockTTL)
	require.NoError(t, err)
	assert.Empty(t, claimed)

	// Completion from a worker that never held the claim is dropped.
	require.NoError(t, s.Complete(ctx, job.ID, "worker-b", "succeeded"))
	held, err := client.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "worker-a", *held.LockOwner)

	require.NoError(t, s.Complete(ctx, job.ID, "worker-a", "succeeded"))
	done, err := client.ScheduledJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, done.LockOwner)
	assert.Equal(t, "succeeded", done.LastStatus)
	assert.True(t, done.NextFireAt.After(time.Now()))

	// Rescheduled into the future, so nothing is due anymore.
	claimed, err = s.ClaimDue(ctx, "worker-a", 10, DefaultLockTTL)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestClaimDueStealsExpiredLock(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := t.Context()

	job, err := s.CreateJob(ctx, "acme", "payments", "agent_run", "*/5 * * * *", nil)
	require.NoError(t, err)
	err = client.ScheduledJob.UpdateOneID(job.ID).
		SetNextFireAt(time.Now().Add(-time.Minute)).
		SetLockOwner("worker-dead").
		SetLockExpiresAt(time.Now().Add(-time.Second)).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := s.ClaimDue(ctx, "worker-b", 10, DefaultLockTTL)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, "worker-b", *claimed[0].LockOwner)
}

func TestClaimDueSkipsDisabledJobs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := NewStore(client)
	ctx := t.Context()

	job, err := s.CreateJob(ctx, "acme", "payments", "agent_run", "*/5 * * * *", nil)
	require.NoError(t, err)
	err = client.ScheduledJob.UpdateOneID(job.ID).
		SetNextFireAt(time.Now().Add(-time.Minute)).
		SetEnabled(false).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := s.ClaimDue(ctx, "worker-a", 10, DefaultLockTTL)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}
