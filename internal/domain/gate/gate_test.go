package gate

import (
	"testing"

	"wrapcommand/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestGate_ScopeNoneAlwaysDowngrades(t *testing.T) {
	g := New(DefaultPolicy())

	for _, actor := range []string{"website_chat", "mightychat_inbox", "jordan_lee", "unknown_bot", ""} {
		res := g.Check(actor, entities.ActionExecuteQuote)
		assert.False(t, res.Proceed, actor)
		assert.True(t, res.ConvertToPending, actor)
		assert.Equal(t, entities.ScopeNone, res.Scope, actor)
		assert.NotEmpty(t, res.Reason, actor)
	}
}

func TestGate_ScopeQuoteProceeds(t *testing.T) {
	g := New(DefaultPolicy())

	for _, actor := range []string{OpsDeskActor, "OPS_DESK"} {
		for _, action := range []string{entities.ActionCreateQuote, entities.ActionExecuteQuote, entities.ActionSendQuoteEmail} {
			res := g.Check(actor, action)
			assert.True(t, res.Proceed, "%s %s", actor, action)
			assert.False(t, res.ConvertToPending)
			assert.Empty(t, res.Reason)
			assert.Equal(t, entities.ScopeQuote, res.Scope)
		}
	}
}

func TestGate_ScopeIsNotTransferable(t *testing.T) {
	g := New(DefaultPolicy())

	assert.False(t, g.Check(OpsDeskActor, entities.ActionChargeCustomer).Proceed)
	assert.False(t, g.Check("order_desk", entities.ActionExecuteQuote).Proceed)
	assert.True(t, g.Check("order_desk", entities.ActionChargeCustomer).Proceed)
	assert.True(t, g.Check("content_studio", entities.ActionPublishContent).Proceed)
	assert.False(t, g.Check("content_studio", entities.ActionSendQuoteEmail).Proceed)
}

func TestGate_HumanPrefixNeedsID(t *testing.T) {
	g := New(DefaultPolicy())

	assert.Equal(t, entities.ScopeNone, g.ScopeOf("user:"))
	assert.Equal(t, "", HumanActor("  "))
	assert.Equal(t, "user:7", HumanActor(" 7 "))

	res := g.CheckUser("  ", entities.ActionExecuteQuote)
	assert.False(t, res.Proceed)
	assert.Equal(t, entities.ScopeNone, res.Scope)
}

func TestGate_CheckUser(t *testing.T) {
	g := New(DefaultPolicy())

	res := g.CheckUser("42", entities.ActionExecuteQuote)
	assert.True(t, res.Proceed)
	assert.Equal(t, entities.ScopeQuote, res.Scope)
	assert.Equal(t, "user:42", res.Actor)
	assert.False(t, g.CheckUser("42", entities.ActionChargeCustomer).Proceed)
}

func TestGate_AgentCannotClaimHumanPrefix(t *testing.T) {
	g := New(DefaultPolicy())

	for _, agent := range []string{"user:42", "USER:ops", HumanActor("7")} {
		res := g.Check(agent, entities.ActionExecuteQuote)
		assert.False(t, res.Proceed, agent)
		assert.True(t, res.ConvertToPending, agent)
		assert.Equal(t, entities.ScopeNone, res.Scope, agent)
	}
}

func TestGate_CustomPolicy(t *testing.T) {
	g := New(Policy{
		ActorScopes: map[string]entities.ExecutionScope{"website_chat": entities.ScopeQuote},
		Allowed:     map[entities.ExecutionScope][]string{entities.ScopeQuote: {entities.ActionExecuteQuote}},
	})

	assert.True(t, g.Check("website_chat", entities.ActionExecuteQuote).Proceed)
	res := g.Check("ops_desk", entities.ActionExecuteQuote)
	assert.False(t, res.Proceed)
	assert.Equal(t, entities.ScopeNone, res.Scope)
}
