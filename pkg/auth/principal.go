// Package auth classifies bearer credentials into principals and enforces
// permission checks on them.
package auth

import "strings"

// Roles.
const (
	RoleAdmin    = "admin"
	RoleOrgAdmin = "org_admin"
	RoleTeam     = "team"
	RoleVisitor  = "visitor"
)

// AuthKind records how the principal authenticated.
const (
	KindSharedToken   = "shared_token"
	KindOrgToken      = "org_token"
	KindTeamToken     = "team_token"
	KindOIDC          = "oidc"
	KindImpersonation = "impersonation"
	KindVisitor       = "visitor"
)

// Permission strings.
const (
	PermAdminAll       = "admin:*"
	PermProvision      = "admin:provision"
	PermProvisionRead  = "admin:provision:read"
	PermAdminAgentRun  = "admin:agent:run"
	PermTeamRead       = "team:read"
	PermTeamWrite      = "team:write"
	PermAgentInvoke    = "agent:invoke"
)

// PlaygroundAgent is the only agent a visitor principal may invoke.
const PlaygroundAgent = "playground"

// Principal is an authenticated caller.
type Principal struct {
	Role             string
	AuthKind         string
	OrgID            string
	TeamNodeID       string
	Subject          string
	Email            string
	Permissions      []string
	CanWrite         bool
	VisitorSessionID string
}

// HasPermission reports whether the principal holds perm. The admin:*
// wildcard satisfies every check, and an "admin:x" grant satisfies
// "admin:x:y" sub-permissions.
func (p *Principal) HasPermission(perm string) bool {
	for _, have := range p.Permissions {
		if have == perm || have == PermAdminAll {
			return true
		}
		if strings.HasPrefix(perm, have+":") {
			return true
		}
	}
	return false
}

// MayInvokeAgent reports whether the principal may run the named agent.
// Visitors are confined to the playground agent.
func (p *Principal) MayInvokeAgent(agent string) bool {
	if !p.HasPermission(PermAgentInvoke) && !p.HasPermission(PermAdminAgentRun) {
		return false
	}
	if p.Role == RoleVisitor {
		return agent == PlaygroundAgent
	}
	return true
}
