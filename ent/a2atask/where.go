// Code generated by ent, DO NOT EDIT.

package a2atask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldOrgID, v))
}

// TeamNodeID applies equality check predicate on the "team_node_id" field. It's identical to TeamNodeIDEQ.
func TeamNodeID(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldTeamNodeID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultMessageIsNil applies the IsNil predicate on the "result_message" field.
func ResultMessageIsNil() predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIsNull(FieldResultMessage))
}

// ResultMessageNotNil applies the NotNil predicate on the "result_message" field.
func ResultMessageNotNil() predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotNull(FieldResultMessage))
}

// ArtifactsIsNil applies the IsNil predicate on the "artifacts" field.
func ArtifactsIsNil() predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIsNull(FieldArtifacts))
}

// ArtifactsNotNil applies the NotNil predicate on the "artifacts" field.
func ArtifactsNotNil() predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotNull(FieldArtifacts))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotNull(FieldHistory))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldContainsFold(FieldOrgID, v))
}

// TeamNodeIDEQ applies the EQ predicate on the "team_node_id" field.
func TeamNodeIDEQ(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldTeamNodeID, v))
}

// TeamNodeIDNEQ applies the NEQ predicate on the "team_node_id" field.
func TeamNodeIDNEQ(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNEQ(FieldTeamNodeID, v))
}

// TeamNodeIDIn applies the In predicate on the "team_node_id" field.
func TeamNodeIDIn(vs ...string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDNotIn applies the NotIn predicate on the "team_node_id" field.
func TeamNodeIDNotIn(vs ...string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDGT applies the GT predicate on the "team_node_id" field.
func TeamNodeIDGT(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGT(FieldTeamNodeID, v))
}

// TeamNodeIDGTE applies the GTE predicate on the "team_node_id" field.
func TeamNodeIDGTE(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGTE(FieldTeamNodeID, v))
}

// TeamNodeIDLT applies the LT predicate on the "team_node_id" field.
func TeamNodeIDLT(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLT(FieldTeamNodeID, v))
}

// TeamNodeIDLTE applies the LTE predicate on the "team_node_id" field.
func TeamNodeIDLTE(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLTE(FieldTeamNodeID, v))
}

// TeamNodeIDContains applies the Contains predicate on the "team_node_id" field.
func TeamNodeIDContains(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldContains(FieldTeamNodeID, v))
}

// TeamNodeIDHasPrefix applies the HasPrefix predicate on the "team_node_id" field.
func TeamNodeIDHasPrefix(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldHasPrefix(FieldTeamNodeID, v))
}

// TeamNodeIDHasSuffix applies the HasSuffix predicate on the "team_node_id" field.
func TeamNodeIDHasSuffix(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldHasSuffix(FieldTeamNodeID, v))
}

// TeamNodeIDEqualFold applies the EqualFold predicate on the "team_node_id" field.
func TeamNodeIDEqualFold(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEqualFold(FieldTeamNodeID, v))
}

// TeamNodeIDContainsFold applies the ContainsFold predicate on the "team_node_id" field.
func TeamNodeIDContainsFold(v string) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldContainsFold(FieldTeamNodeID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.A2ATask {
	return predicate.A2ATask(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.A2ATask) predicate.A2ATask {
	return predicate.A2ATask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.A2ATask) predicate.A2ATask {
	return predicate.A2ATask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.A2ATask) predicate.A2ATask {
	return predicate.A2ATask(sql.NotPredicates(p))
}
