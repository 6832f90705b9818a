// Code generated by ent, DO NOT EDIT.

package routingkey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldContainsFold(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldKey, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldOrgID, v))
}

// TeamNodeID applies equality check predicate on the "team_node_id" field. It's identical to TeamNodeIDEQ.
func TeamNodeID(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldTeamNodeID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNotIn(FieldSource, vs...))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldContainsFold(FieldKey, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldContainsFold(FieldOrgID, v))
}

// TeamNodeIDEQ applies the EQ predicate on the "team_node_id" field.
func TeamNodeIDEQ(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldTeamNodeID, v))
}

// TeamNodeIDNEQ applies the NEQ predicate on the "team_node_id" field.
func TeamNodeIDNEQ(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNEQ(FieldTeamNodeID, v))
}

// TeamNodeIDIn applies the In predicate on the "team_node_id" field.
func TeamNodeIDIn(vs ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDNotIn applies the NotIn predicate on the "team_node_id" field.
func TeamNodeIDNotIn(vs ...string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNotIn(FieldTeamNodeID, vs...))
}

// TeamNodeIDGT applies the GT predicate on the "team_node_id" field.
func TeamNodeIDGT(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGT(FieldTeamNodeID, v))
}

// TeamNodeIDGTE applies the GTE predicate on the "team_node_id" field.
func TeamNodeIDGTE(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGTE(FieldTeamNodeID, v))
}

// TeamNodeIDLT applies the LT predicate on the "team_node_id" field.
func TeamNodeIDLT(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLT(FieldTeamNodeID, v))
}

// TeamNodeIDLTE applies the LTE predicate on the "team_node_id" field.
func TeamNodeIDLTE(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLTE(FieldTeamNodeID, v))
}

// TeamNodeIDContains applies the Contains predicate on the "team_node_id" field.
func TeamNodeIDContains(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldContains(FieldTeamNodeID, v))
}

// TeamNodeIDHasPrefix applies the HasPrefix predicate on the "team_node_id" field.
func TeamNodeIDHasPrefix(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldHasPrefix(FieldTeamNodeID, v))
}

// TeamNodeIDHasSuffix applies the HasSuffix predicate on the "team_node_id" field.
func TeamNodeIDHasSuffix(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldHasSuffix(FieldTeamNodeID, v))
}

// TeamNodeIDEqualFold applies the EqualFold predicate on the "team_node_id" field.
func TeamNodeIDEqualFold(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEqualFold(FieldTeamNodeID, v))
}

// TeamNodeIDContainsFold applies the ContainsFold predicate on the "team_node_id" field.
func TeamNodeIDContainsFold(v string) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldContainsFold(FieldTeamNodeID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutingKey {
	return predicate.RoutingKey(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutingKey) predicate.RoutingKey {
	return predicate.RoutingKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutingKey) predicate.RoutingKey {
	return predicate.RoutingKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutingKey) predicate.RoutingKey {
	return predicate.RoutingKey(sql.NotPredicates(p))
}
