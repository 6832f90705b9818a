// Package scheduler runs cron-driven agent jobs. The store half is the
// cluster-safety point: due jobs are claimed inside a transaction with
// FOR UPDATE SKIP LOCKED so replicas never double-claim; the worker half
// polls the internal API and executes claimed jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/scheduledjob"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
)

// DefaultLockTTL bounds how long a claim holds before another replica may
// steal the job; generous because agent runs can be slow.
const DefaultLockTTL = 15 * time.Minute

// Store persists and claims scheduled jobs.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates the scheduler store.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client: client,
		logger: slog.Default().With("component", "scheduler.store"),
	}
}

// NextFire computes the next fire time of a standard 5-field cron expression.
func NextFire(cronExpr string, after time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return schedule.Next(after), nil
}

// CreateJob registers a new scheduled job for a team.
func (s *Store) CreateJob(ctx context.Context, orgID, teamNodeID, jobType, cronExpr string, config map[string]interface{}) (*ent.ScheduledJob, error) {
	next, err := NextFire(cronExpr, time.Now())
	if err != nil {
		return nil, err
	}
	builder := s.client.ScheduledJob.Create().
		SetID(uuid.NewString()).
		SetOrgID(orgID).
		SetTeamNodeID(teamNodeID).
		SetJobType(jobType).
		SetCronExpr(cronExpr).
		SetNextFireAt(next)
	if config != nil {
		builder.SetConfig(config)
	}
	return builder.Save(ctx)
}

// ListJobs returns a team's jobs.
func (s *Store) ListJobs(ctx context.Context, orgID, teamNodeID string) ([]*ent.ScheduledJob, error) {
	return s.client.ScheduledJob.Query().
		Where(scheduledjob.OrgID(orgID), scheduledjob.TeamNodeID(teamNodeID)).
		Order(ent.Asc(scheduledjob.FieldNextFireAt)).
		All(ctx)
}

// DeleteJob removes a job scoped to its tenant.
func (s *Store) DeleteJob(ctx context.Context, orgID, teamNodeID, jobID string) error {
	n, err := s.client.ScheduledJob.Delete().
		Where(
			scheduledjob.ID(jobID),
			scheduledjob.OrgID(orgID),
			scheduledjob.TeamNodeID(teamNodeID),
		).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return nodestore.ErrNotFound
	}
	return nil
}

// SetEnabled toggles a job.
func (s *Store) SetEnabled(ctx context.Context, orgID, teamNodeID, jobID string, enabled bool) error {
	n, err := s.client.ScheduledJob.Update().
		Where(
			scheduledjob.ID(jobID),
			scheduledjob.OrgID(orgID),
			scheduledjob.TeamNodeID(teamNodeID),
		).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return nodestore.ErrNotFound
	}
	return nil
}

// ClaimDue claims up to limit due jobs for owner. Claimed rows get
// lock_owner and lock_expires_at stamped inside the locking transaction;
// expired claims are stealable.
func (s *Store) ClaimDue(ctx context.Context, owner string, limit int, lockTTL time.Duration) ([]*ent.ScheduledJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if lockTTL <= 0 {
		lockTTL = DefaultLockTTL
	}
	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	due, err := tx.ScheduledJob.Query().
		Where(
			scheduledjob.Enabled(true),
			scheduledjob.NextFireAtLTE(now),
			scheduledjob.Or(
				scheduledjob.LockExpiresAtIsNil(),
				scheduledjob.LockExpiresAtLT(now),
			),
		).
		Order(ent.Asc(scheduledjob.FieldNextFireAt)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying due jobs: %w", err)
	}

	claimed := make([]*ent.ScheduledJob, 0, len(due))
	for _, job := range due {
		updated, err := tx.ScheduledJob.UpdateOneID(job.ID).
			SetLockOwner(owner).
			SetLockExpiresAt(now.Add(lockTTL)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("claiming job %s: %w", job.ID, err)
		}
		claimed = append(claimed, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	if len(claimed) > 0 {
		s.logger.Info("Claimed due jobs", "owner", owner, "count", len(claimed))
	}
	return claimed, nil
}

// Complete releases a claimed job, records its status, and advances
// next_fire_at from the cron expression. Only the claiming owner may
// complete; a stale owner's report is dropped.
func (s *Store) Complete(ctx context.Context, jobID, owner, status string) error {
	job, err := s.client.ScheduledJob.Query().
		Where(scheduledjob.ID(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nodestore.ErrNotFound
		}
		return err
	}
	if job.LockOwner == nil || *job.LockOwner != owner {
		s.logger.Warn("Dropping completion from stale owner", "job_id", jobID, "owner", owner)
		return nil
	}
	next, err := NextFire(job.CronExpr, time.Now())
	if err != nil {
		return err
	}
	return s.client.ScheduledJob.UpdateOneID(jobID).
		SetNextFireAt(next).
		SetLastStatus(status).
		ClearLockOwner().
		ClearLockExpiresAt().
		Exec(ctx)
}
