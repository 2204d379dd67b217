// Package gate decides whether an actor may finalize an action or must fall
// back to producing a draft for human review.
package gate

import (
	"fmt"
	"strings"

	"wrapcommand/internal/domain/entities"
)

// OpsDeskActor is the single automated actor trusted to execute quotes.
const OpsDeskActor = "ops_desk"

// HumanActorPrefix marks authenticated human operators, e.g. "user:42".
const HumanActorPrefix = "user:"

// HumanActor builds the actor id for an authenticated operator.
func HumanActor(userID string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ""
	}
	return HumanActorPrefix + userID
}

// Policy is the scope table the gate consults. It is plain data so tests and
// deployments can swap it.
type Policy struct {
	// ActorScopes maps actor ids to their scope. Unlisted actors get
	// DefaultScope.
	ActorScopes map[string]entities.ExecutionScope
	// Allowed lists the actions each scope may finalize.
	Allowed map[entities.ExecutionScope][]string
	// HumanScope applies to operators checked through CheckUser.
	HumanScope   entities.ExecutionScope
	DefaultScope entities.ExecutionScope
}

// DefaultPolicy: channel agents draft, ops_desk and humans execute quotes.
func DefaultPolicy() Policy {
	return Policy{
		ActorScopes: map[string]entities.ExecutionScope{
			OpsDeskActor:       entities.ScopeQuote,
			"website_chat":     entities.ScopeNone,
			"mightychat_inbox": entities.ScopeNone,
			"instagram_dm":     entities.ScopeNone,
			"jordan_lee":       entities.ScopeNone,
			"sales_agent":      entities.ScopeNone,
			"order_desk":       entities.ScopeOrder,
			"content_studio":   entities.ScopeContent,
		},
		Allowed: map[entities.ExecutionScope][]string{
			entities.ScopeNone:    nil,
			entities.ScopeQuote:   {entities.ActionCreateQuote, entities.ActionExecuteQuote, entities.ActionSendQuoteEmail},
			entities.ScopeOrder:   {entities.ActionCreateOrder, entities.ActionExecuteOrder, entities.ActionChargeCustomer},
			entities.ScopeContent: {entities.ActionPublishContent, entities.ActionScheduleContent},
		},
		HumanScope:   entities.ScopeQuote,
		DefaultScope: entities.ScopeNone,
	}
}

// Gate is a pure authorization lookup over a Policy.
type Gate struct {
	policy Policy
}

func New(policy Policy) *Gate {
	if policy.DefaultScope == "" {
		policy.DefaultScope = entities.ScopeNone
	}
	return &Gate{policy: policy}
}

// ScopeOf resolves an agent's execution scope. An agent id that happens to
// carry HumanActorPrefix is still just an agent id.
func (g *Gate) ScopeOf(agentID string) entities.ExecutionScope {
	agentID = strings.ToLower(strings.TrimSpace(agentID))
	if agentID == "" {
		return g.policy.DefaultScope
	}
	if s, ok := g.policy.ActorScopes[agentID]; ok {
		return s
	}
	return g.policy.DefaultScope
}

// Check returns proceed=true when the agent's scope allows the action.
// Otherwise it asks the caller to downgrade to a pending draft.
func (g *Gate) Check(agentID, action string) entities.GateResult {
	return g.decide(agentID, g.ScopeOf(agentID), action)
}

// CheckUser gates an authenticated operator. Only callers holding a verified
// user id should use it; the actor is reported as HumanActor(userID).
func (g *Gate) CheckUser(userID, action string) entities.GateResult {
	actor := HumanActor(userID)
	scope := g.policy.DefaultScope
	if actor != "" && g.policy.HumanScope != "" {
		scope = g.policy.HumanScope
	}
	return g.decide(actor, scope, action)
}

func (g *Gate) decide(actorID string, scope entities.ExecutionScope, action string) entities.GateResult {
	res := entities.GateResult{Actor: actorID, Scope: scope, Action: action}
	for _, a := range g.policy.Allowed[scope] {
		if a == action {
			res.Proceed = true
			return res
		}
	}
	if strings.TrimSpace(actorID) == "" {
		res.Reason = fmt.Sprintf("no actor supplied; %s requires an authorized actor", action)
	} else {
		res.Reason = fmt.Sprintf("actor %q has execution scope %q which does not allow %s", actorID, scope, action)
	}
	res.ConvertToPending = true
	return res
}
