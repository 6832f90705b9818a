// Code generated by ent, DO NOT EDIT.

package provisioningrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldOrgID, v))
}

// TeamNodeID applies equality check predicate on the "team_node_id" field. It's identical to TeamNodeIDEQ.
func TeamNodeID(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldTeamNodeID, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldIdempotencyKey, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContainsFold(FieldOrgID, v))
}

// TeamNodeIDEQ applies the EQ predicate on the "team_node_id" field.
func TeamNodeIDEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldTeamNodeID, v))
}

// TeamNodeIDNEQ applies the NEQ predicate on the "team_node_id" field.
func TeamNodeIDNEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldTeamNodeID, v))
}

// TeamNodeIDIn applies the In predicate on the "team_node_id" field.
func TeamNodeIDIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDNotIn applies the NotIn predicate on the "team_node_id" field.
func TeamNodeIDNotIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDGT applies the GT predicate on the "team_node_id" field.
func TeamNodeIDGT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGT(FieldTeamNodeID, v))
}

// TeamNodeIDGTE applies the GTE predicate on the "team_node_id" field.
func TeamNodeIDGTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGTE(FieldTeamNodeID, v))
}

// TeamNodeIDLT applies the LT predicate on the "team_node_id" field.
func TeamNodeIDLT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLT(FieldTeamNodeID, v))
}

// TeamNodeIDLTE applies the LTE predicate on the "team_node_id" field.
func TeamNodeIDLTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLTE(FieldTeamNodeID, v))
}

// TeamNodeIDContains applies the Contains predicate on the "team_node_id" field.
func TeamNodeIDContains(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContains(FieldTeamNodeID, v))
}

// TeamNodeIDHasPrefix applies the HasPrefix predicate on the "team_node_id" field.
func TeamNodeIDHasPrefix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasPrefix(FieldTeamNodeID, v))
}

// TeamNodeIDHasSuffix applies the HasSuffix predicate on the "team_node_id" field.
func TeamNodeIDHasSuffix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasSuffix(FieldTeamNodeID, v))
}

// TeamNodeIDEqualFold applies the EqualFold predicate on the "team_node_id" field.
func TeamNodeIDEqualFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEqualFold(FieldTeamNodeID, v))
}

// TeamNodeIDContainsFold applies the ContainsFold predicate on the "team_node_id" field.
func TeamNodeIDContainsFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContainsFold(FieldTeamNodeID, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StepsIsNil applies the IsNil predicate on the "steps" field.
func StepsIsNil() predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIsNull(FieldSteps))
}

// StepsNotNil applies the NotNil predicate on the "steps" field.
func StepsNotNil() predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotNull(FieldSteps))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProvisioningRun) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProvisioningRun) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProvisioningRun) predicate.ProvisioningRun {
	return predicate.ProvisioningRun(sql.NotPredicates(p))
}
