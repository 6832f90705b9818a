// Code generated by ent, DO NOT EDIT.

package scheduledjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldOrgID, v))
}

// TeamNodeID applies equality check predicate on the "team_node_id" field. It's identical to TeamNodeIDEQ.
func TeamNodeID(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldTeamNodeID, v))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldJobType, v))
}

// CronExpr applies equality check predicate on the "cron_expr" field. It's identical to CronExprEQ.
func CronExpr(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCronExpr, v))
}

// NextFireAt applies equality check predicate on the "next_fire_at" field. It's identical to NextFireAtEQ.
func NextFireAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldNextFireAt, v))
}

// LastStatus applies equality check predicate on the "last_status" field. It's identical to LastStatusEQ.
func LastStatus(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastStatus, v))
}

// LockOwner applies equality check predicate on the "lock_owner" field. It's identical to LockOwnerEQ.
func LockOwner(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLockOwner, v))
}

// LockExpiresAt applies equality check predicate on the "lock_expires_at" field. It's identical to LockExpiresAtEQ.
func LockExpiresAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLockExpiresAt, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldOrgID, v))
}

// TeamNodeIDEQ applies the EQ predicate on the "team_node_id" field.
func TeamNodeIDEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldTeamNodeID, v))
}

// TeamNodeIDNEQ applies the NEQ predicate on the "team_node_id" field.
func TeamNodeIDNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldTeamNodeID, v))
}

// TeamNodeIDIn applies the In predicate on the "team_node_id" field.
func TeamNodeIDIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDNotIn applies the NotIn predicate on the "team_node_id" field.
func TeamNodeIDNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDGT applies the GT predicate on the "team_node_id" field.
func TeamNodeIDGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldTeamNodeID, v))
}

// TeamNodeIDGTE applies the GTE predicate on the "team_node_id" field.
func TeamNodeIDGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldTeamNodeID, v))
}

// TeamNodeIDLT applies the LT predicate on the "team_node_id" field.
func TeamNodeIDLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldTeamNodeID, v))
}

// TeamNodeIDLTE applies the LTE predicate on the "team_node_id" field.
func TeamNodeIDLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldTeamNodeID, v))
}

// TeamNodeIDContains applies the Contains predicate on the "team_node_id" field.
func TeamNodeIDContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldTeamNodeID, v))
}

// TeamNodeIDHasPrefix applies the HasPrefix predicate on the "team_node_id" field.
func TeamNodeIDHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldTeamNodeID, v))
}

// TeamNodeIDHasSuffix applies the HasSuffix predicate on the "team_node_id" field.
func TeamNodeIDHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldTeamNodeID, v))
}

// TeamNodeIDEqualFold applies the EqualFold predicate on the "team_node_id" field.
func TeamNodeIDEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldTeamNodeID, v))
}

// TeamNodeIDContainsFold applies the ContainsFold predicate on the "team_node_id" field.
func TeamNodeIDContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldTeamNodeID, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldJobType, v))
}

// CronExprEQ applies the EQ predicate on the "cron_expr" field.
func CronExprEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCronExpr, v))
}

// CronExprNEQ applies the NEQ predicate on the "cron_expr" field.
func CronExprNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldCronExpr, v))
}

// CronExprIn applies the In predicate on the "cron_expr" field.
func CronExprIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldCronExpr, vs...))
}

// CronExprNotIn applies the NotIn predicate on the "cron_expr" field.
func CronExprNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldCronExpr, vs...))
}

// CronExprGT applies the GT predicate on the "cron_expr" field.
func CronExprGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldCronExpr, v))
}

// CronExprGTE applies the GTE predicate on the "cron_expr" field.
func CronExprGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldCronExpr, v))
}

// CronExprLT applies the LT predicate on the "cron_expr" field.
func CronExprLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldCronExpr, v))
}

// CronExprLTE applies the LTE predicate on the "cron_expr" field.
func CronExprLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldCronExpr, v))
}

// CronExprContains applies the Contains predicate on the "cron_expr" field.
func CronExprContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldCronExpr, v))
}

// CronExprHasPrefix applies the HasPrefix predicate on the "cron_expr" field.
func CronExprHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldCronExpr, v))
}

// CronExprHasSuffix applies the HasSuffix predicate on the "cron_expr" field.
func CronExprHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldCronExpr, v))
}

// CronExprEqualFold applies the EqualFold predicate on the "cron_expr" field.
func CronExprEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldCronExpr, v))
}

// CronExprContainsFold applies the ContainsFold predicate on the "cron_expr" field.
func CronExprContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldCronExpr, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldConfig))
}

// NextFireAtEQ applies the EQ predicate on the "next_fire_at" field.
func NextFireAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldNextFireAt, v))
}

// NextFireAtNEQ applies the NEQ predicate on the "next_fire_at" field.
func NextFireAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldNextFireAt, v))
}

// NextFireAtIn applies the In predicate on the "next_fire_at" field.
func NextFireAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldNextFireAt, vs...))
}

// NextFireAtNotIn applies the NotIn predicate on the "next_fire_at" field.
func NextFireAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldNextFireAt, vs...))
}

// NextFireAtGT applies the GT predicate on the "next_fire_at" field.
func NextFireAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldNextFireAt, v))
}

// NextFireAtGTE applies the GTE predicate on the "next_fire_at" field.
func NextFireAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldNextFireAt, v))
}

// NextFireAtLT applies the LT predicate on the "next_fire_at" field.
func NextFireAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldNextFireAt, v))
}

// NextFireAtLTE applies the LTE predicate on the "next_fire_at" field.
func NextFireAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldNextFireAt, v))
}

// LastStatusEQ applies the EQ predicate on the "last_status" field.
func LastStatusEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastStatus, v))
}

// LastStatusNEQ applies the NEQ predicate on the "last_status" field.
func LastStatusNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldLastStatus, v))
}

// LastStatusIn applies the In predicate on the "last_status" field.
func LastStatusIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldLastStatus, vs...))
}

// LastStatusNotIn applies the NotIn predicate on the "last_status" field.
func LastStatusNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldLastStatus, vs...))
}

// LastStatusGT applies the GT predicate on the "last_status" field.
func LastStatusGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldLastStatus, v))
}

// LastStatusGTE applies the GTE predicate on the "last_status" field.
func LastStatusGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldLastStatus, v))
}

// LastStatusLT applies the LT predicate on the "last_status" field.
func LastStatusLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldLastStatus, v))
}

// LastStatusLTE applies the LTE predicate on the "last_status" field.
func LastStatusLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldLastStatus, v))
}

// LastStatusContains applies the Contains predicate on the "last_status" field.
func LastStatusContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldLastStatus, v))
}

// LastStatusHasPrefix applies the HasPrefix predicate on the "last_status" field.
func LastStatusHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldLastStatus, v))
}

// LastStatusHasSuffix applies the HasSuffix predicate on the "last_status" field.
func LastStatusHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldLastStatus, v))
}

// LastStatusIsNil applies the IsNil predicate on the "last_status" field.
func LastStatusIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldLastStatus))
}

// LastStatusNotNil applies the NotNil predicate on the "last_status" field.
func LastStatusNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldLastStatus))
}

// LastStatusEqualFold applies the EqualFold predicate on the "last_status" field.
func LastStatusEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldLastStatus, v))
}

// LastStatusContainsFold applies the ContainsFold predicate on the "last_status" field.
func LastStatusContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldLastStatus, v))
}

// LockOwnerEQ applies the EQ predicate on the "lock_owner" field.
func LockOwnerEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLockOwner, v))
}

// LockOwnerNEQ applies the NEQ predicate on the "lock_owner" field.
func LockOwnerNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldLockOwner, v))
}

// LockOwnerIn applies the In predicate on the "lock_owner" field.
func LockOwnerIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldLockOwner, vs...))
}

// LockOwnerNotIn applies the NotIn predicate on the "lock_owner" field.
func LockOwnerNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldLockOwner, vs...))
}

// LockOwnerGT applies the GT predicate on the "lock_owner" field.
func LockOwnerGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldLockOwner, v))
}

// LockOwnerGTE applies the GTE predicate on the "lock_owner" field.
func LockOwnerGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldLockOwner, v))
}

// LockOwnerLT applies the LT predicate on the "lock_owner" field.
func LockOwnerLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldLockOwner, v))
}

// LockOwnerLTE applies the LTE predicate on the "lock_owner" field.
func LockOwnerLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldLockOwner, v))
}

// LockOwnerContains applies the Contains predicate on the "lock_owner" field.
func LockOwnerContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldLockOwner, v))
}

// LockOwnerHasPrefix applies the HasPrefix predicate on the "lock_owner" field.
func LockOwnerHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldLockOwner, v))
}

// LockOwnerHasSuffix applies the HasSuffix predicate on the "lock_owner" field.
func LockOwnerHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldLockOwner, v))
}

// LockOwnerIsNil applies the IsNil predicate on the "lock_owner" field.
func LockOwnerIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldLockOwner))
}

// LockOwnerNotNil applies the NotNil predicate on the "lock_owner" field.
func LockOwnerNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldLockOwner))
}

// LockOwnerEqualFold applies the EqualFold predicate on the "lock_owner" field.
func LockOwnerEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldLockOwner, v))
}

// LockOwnerContainsFold applies the ContainsFold predicate on the "lock_owner" field.
func LockOwnerContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldLockOwner, v))
}

// LockExpiresAtEQ applies the EQ predicate on the "lock_expires_at" field.
func LockExpiresAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLockExpiresAt, v))
}

// LockExpiresAtNEQ applies the NEQ predicate on the "lock_expires_at" field.
func LockExpiresAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldLockExpiresAt, v))
}

// LockExpiresAtIn applies the In predicate on the "lock_expires_at" field.
func LockExpiresAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldLockExpiresAt, vs...))
}

// LockExpiresAtNotIn applies the NotIn predicate on the "lock_expires_at" field.
func LockExpiresAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldLockExpiresAt, vs...))
}

// LockExpiresAtGT applies the GT predicate on the "lock_expires_at" field.
func LockExpiresAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldLockExpiresAt, v))
}

// LockExpiresAtGTE applies the GTE predicate on the "lock_expires_at" field.
func LockExpiresAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldLockExpiresAt, v))
}

// LockExpiresAtLT applies the LT predicate on the "lock_expires_at" field.
func LockExpiresAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldLockExpiresAt, v))
}

// LockExpiresAtLTE applies the LTE predicate on the "lock_expires_at" field.
func LockExpiresAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldLockExpiresAt, v))
}

// LockExpiresAtIsNil applies the IsNil predicate on the "lock_expires_at" field.
func LockExpiresAtIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldLockExpiresAt))
}

// LockExpiresAtNotNil applies the NotNil predicate on the "lock_expires_at" field.
func LockExpiresAtNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldLockExpiresAt))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.NotPredicates(p))
}
