// Code generated by ent, DO NOT EDIT.

package impersonationjti

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldOrgID, v))
}

// TeamNodeID applies equality check predicate on the "team_node_id" field. It's identical to TeamNodeIDEQ.
func TeamNodeID(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldTeamNodeID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldExpiresAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldContainsFold(FieldOrgID, v))
}

// TeamNodeIDEQ applies the EQ predicate on the "team_node_id" field.
func TeamNodeIDEQ(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldTeamNodeID, v))
}

// TeamNodeIDNEQ applies the NEQ predicate on the "team_node_id" field.
func TeamNodeIDNEQ(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNEQ(FieldTeamNodeID, v))
}

// TeamNodeIDIn applies the In predicate on the "team_node_id" field.
func TeamNodeIDIn(vs ...string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDNotIn applies the NotIn predicate on the "team_node_id" field.
func TeamNodeIDNotIn(vs ...string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNotIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDGT applies the GT predicate on the "team_node_id" field.
func TeamNodeIDGT(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGT(FieldTeamNodeID, v))
}

// TeamNodeIDGTE applies the GTE predicate on the "team_node_id" field.
func TeamNodeIDGTE(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGTE(FieldTeamNodeID, v))
}

// TeamNodeIDLT applies the LT predicate on the "team_node_id" field.
func TeamNodeIDLT(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLT(FieldTeamNodeID, v))
}

// TeamNodeIDLTE applies the LTE predicate on the "team_node_id" field.
func TeamNodeIDLTE(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLTE(FieldTeamNodeID, v))
}

// TeamNodeIDContains applies the Contains predicate on the "team_node_id" field.
func TeamNodeIDContains(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldContains(FieldTeamNodeID, v))
}

// TeamNodeIDHasPrefix applies the HasPrefix predicate on the "team_node_id" field.
func TeamNodeIDHasPrefix(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldHasPrefix(FieldTeamNodeID, v))
}

// TeamNodeIDHasSuffix applies the HasSuffix predicate on the "team_node_id" field.
func TeamNodeIDHasSuffix(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldHasSuffix(FieldTeamNodeID, v))
}

// TeamNodeIDEqualFold applies the EqualFold predicate on the "team_node_id" field.
func TeamNodeIDEqualFold(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEqualFold(FieldTeamNodeID, v))
}

// TeamNodeIDContainsFold applies the ContainsFold predicate on the "team_node_id" field.
func TeamNodeIDContainsFold(v string) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldContainsFold(FieldTeamNodeID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImpersonationJTI) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImpersonationJTI) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImpersonationJTI) predicate.ImpersonationJTI {
	return predicate.ImpersonationJTI(sql.NotPredicates(p))
}
