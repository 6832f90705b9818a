// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/incidentfox/incidentfox/ent/a2atask"
	"github.com/incidentfox/incidentfox/ent/agentrun"
	"github.com/incidentfox/incidentfox/ent/auditevent"
	"github.com/incidentfox/incidentfox/ent/impersonationjti"
	"github.com/incidentfox/incidentfox/ent/nodeconfig"
	"github.com/incidentfox/incidentfox/ent/nodeconfighistory"
	"github.com/incidentfox/incidentfox/ent/orgadmintoken"
	"github.com/incidentfox/incidentfox/ent/orgnode"
	"github.com/incidentfox/incidentfox/ent/provisioningrun"
	"github.com/incidentfox/incidentfox/ent/routingkey"
	"github.com/incidentfox/incidentfox/ent/scheduledjob"
	"github.com/incidentfox/incidentfox/ent/schema"
	"github.com/incidentfox/incidentfox/ent/teamtoken"
	"github.com/incidentfox/incidentfox/ent/tokenaudit"
	"github.com/incidentfox/incidentfox/ent/webhookdelivery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	a2ataskFields := schema.A2ATask{}.Fields()
	_ = a2ataskFields
	// a2ataskDescCreatedAt is the schema descriptor for created_at field.
	a2ataskDescCreatedAt := a2ataskFields[8].Descriptor()
	// a2atask.DefaultCreatedAt holds the default value on creation for the created_at field.
	a2atask.DefaultCreatedAt = a2ataskDescCreatedAt.Default.(func() time.Time)
	// a2ataskDescUpdatedAt is the schema descriptor for updated_at field.
	a2ataskDescUpdatedAt := a2ataskFields[9].Descriptor()
	// a2atask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	a2atask.DefaultUpdatedAt = a2ataskDescUpdatedAt.Default.(func() time.Time)
	// a2atask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	a2atask.UpdateDefaultUpdatedAt = a2ataskDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescStartedAt is the schema descriptor for started_at field.
	agentrunDescStartedAt := agentrunFields[7].Descriptor()
	// agentrun.DefaultStartedAt holds the default value on creation for the started_at field.
	agentrun.DefaultStartedAt = agentrunDescStartedAt.Default.(func() time.Time)
	// agentrunDescMaxTurns is the schema descriptor for max_turns field.
	agentrunDescMaxTurns := agentrunFields[9].Descriptor()
	// agentrun.DefaultMaxTurns holds the default value on creation for the max_turns field.
	agentrun.DefaultMaxTurns = agentrunDescMaxTurns.Default.(int)
	// agentrunDescEventsCount is the schema descriptor for events_count field.
	agentrunDescEventsCount := agentrunFields[10].Descriptor()
	// agentrun.DefaultEventsCount holds the default value on creation for the events_count field.
	agentrun.DefaultEventsCount = agentrunDescEventsCount.Default.(int)
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescTs is the schema descriptor for ts field.
	auditeventDescTs := auditeventFields[1].Descriptor()
	// auditevent.DefaultTs holds the default value on creation for the ts field.
	auditevent.DefaultTs = auditeventDescTs.Default.(func() time.Time)
	impersonationjtiFields := schema.ImpersonationJTI{}.Fields()
	_ = impersonationjtiFields
	// impersonationjtiDescCreatedAt is the schema descriptor for created_at field.
	impersonationjtiDescCreatedAt := impersonationjtiFields[3].Descriptor()
	// impersonationjti.DefaultCreatedAt holds the default value on creation for the created_at field.
	impersonationjti.DefaultCreatedAt = impersonationjtiDescCreatedAt.Default.(func() time.Time)
	nodeconfigFields := schema.NodeConfig{}.Fields()
	_ = nodeconfigFields
	// nodeconfigDescVersion is the schema descriptor for version field.
	nodeconfigDescVersion := nodeconfigFields[4].Descriptor()
	// nodeconfig.DefaultVersion holds the default value on creation for the version field.
	nodeconfig.DefaultVersion = nodeconfigDescVersion.Default.(int)
	// nodeconfig.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	nodeconfig.VersionValidator = nodeconfigDescVersion.Validators[0].(func(int) error)
	// nodeconfigDescUpdatedAt is the schema descriptor for updated_at field.
	nodeconfigDescUpdatedAt := nodeconfigFields[5].Descriptor()
	// nodeconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	nodeconfig.DefaultUpdatedAt = nodeconfigDescUpdatedAt.Default.(func() time.Time)
	// nodeconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	nodeconfig.UpdateDefaultUpdatedAt = nodeconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	nodeconfighistoryFields := schema.NodeConfigHistory{}.Fields()
	_ = nodeconfighistoryFields
	// nodeconfighistoryDescRecordedAt is the schema descriptor for recorded_at field.
	nodeconfighistoryDescRecordedAt := nodeconfighistoryFields[5].Descriptor()
	// nodeconfighistory.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	nodeconfighistory.DefaultRecordedAt = nodeconfighistoryDescRecordedAt.Default.(func() time.Time)
	orgadmintokenFields := schema.OrgAdminToken{}.Fields()
	_ = orgadmintokenFields
	// orgadmintokenDescCreatedAt is the schema descriptor for created_at field.
	orgadmintokenDescCreatedAt := orgadmintokenFields[3].Descriptor()
	// orgadmintoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	orgadmintoken.DefaultCreatedAt = orgadmintokenDescCreatedAt.Default.(func() time.Time)
	orgnodeFields := schema.OrgNode{}.Fields()
	_ = orgnodeFields
	// orgnodeDescDepth is the schema descriptor for depth field.
	orgnodeDescDepth := orgnodeFields[6].Descriptor()
	// orgnode.DefaultDepth holds the default value on creation for the depth field.
	orgnode.DefaultDepth = orgnodeDescDepth.Default.(int)
	// orgnodeDescCreatedAt is the schema descriptor for created_at field.
	orgnodeDescCreatedAt := orgnodeFields[7].Descriptor()
	// orgnode.DefaultCreatedAt holds the default value on creation for the created_at field.
	orgnode.DefaultCreatedAt = orgnodeDescCreatedAt.Default.(func() time.Time)
	provisioningrunFields := schema.ProvisioningRun{}.Fields()
	_ = provisioningrunFields
	// provisioningrunDescCreatedAt is the schema descriptor for created_at field.
	provisioningrunDescCreatedAt := provisioningrunFields[7].Descriptor()
	// provisioningrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	provisioningrun.DefaultCreatedAt = provisioningrunDescCreatedAt.Default.(func() time.Time)
	// provisioningrunDescUpdatedAt is the schema descriptor for updated_at field.
	provisioningrunDescUpdatedAt := provisioningrunFields[8].Descriptor()
	// provisioningrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	provisioningrun.DefaultUpdatedAt = provisioningrunDescUpdatedAt.Default.(func() time.Time)
	// provisioningrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	provisioningrun.UpdateDefaultUpdatedAt = provisioningrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	routingkeyFields := schema.RoutingKey{}.Fields()
	_ = routingkeyFields
	// routingkeyDescCreatedAt is the schema descriptor for created_at field.
	routingkeyDescCreatedAt := routingkeyFields[5].Descriptor()
	// routingkey.DefaultCreatedAt holds the default value on creation for the created_at field.
	routingkey.DefaultCreatedAt = routingkeyDescCreatedAt.Default.(func() time.Time)
	scheduledjobFields := schema.ScheduledJob{}.Fields()
	_ = scheduledjobFields
	// scheduledjobDescEnabled is the schema descriptor for enabled field.
	scheduledjobDescEnabled := scheduledjobFields[10].Descriptor()
	// scheduledjob.DefaultEnabled holds the default value on creation for the enabled field.
	scheduledjob.DefaultEnabled = scheduledjobDescEnabled.Default.(bool)
	// scheduledjobDescCreatedAt is the schema descriptor for created_at field.
	scheduledjobDescCreatedAt := scheduledjobFields[11].Descriptor()
	// scheduledjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledjob.DefaultCreatedAt = scheduledjobDescCreatedAt.Default.(func() time.Time)
	// scheduledjobDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledjobDescUpdatedAt := scheduledjobFields[12].Descriptor()
	// scheduledjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledjob.DefaultUpdatedAt = scheduledjobDescUpdatedAt.Default.(func() time.Time)
	// scheduledjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledjob.UpdateDefaultUpdatedAt = scheduledjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	teamtokenFields := schema.TeamToken{}.Fields()
	_ = teamtokenFields
	// teamtokenDescCreatedAt is the schema descriptor for created_at field.
	teamtokenDescCreatedAt := teamtokenFields[4].Descriptor()
	// teamtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	teamtoken.DefaultCreatedAt = teamtokenDescCreatedAt.Default.(func() time.Time)
	tokenauditFields := schema.TokenAudit{}.Fields()
	_ = tokenauditFields
	// tokenauditDescTs is the schema descriptor for ts field.
	tokenauditDescTs := tokenauditFields[1].Descriptor()
	// tokenaudit.DefaultTs holds the default value on creation for the ts field.
	tokenaudit.DefaultTs = tokenauditDescTs.Default.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[6].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
}
