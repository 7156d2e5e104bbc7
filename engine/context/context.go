// Package context derives named predicates from raw simulation state.
// Every context type is an ephemeral value snapshot built fresh per call:
// construction never mutates inputs, and identical snapshots always yield
// identical predicates, so rule conditions read declaratively.
package context

import (
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// Shared thresholds. Each context documents which it reads.
const (
	LowWealth      = 50_000  // below this the family is weak financially
	StrongWealth   = 150_000 // above this the family is strong financially
	HighHeat       = 60
	SevereHeat     = 85
	LowRespect     = 30
	HighRespect    = 70
	DominatingTurf = 4 // territory count needed to dominate

	// Relationship bands. Close friends are also friends.
	EnemyBelow      = -30
	FriendAbove     = 20
	CloseFriendOver = 70
)

// Game is the whole-family snapshot used by the game-level table and
// embedded by the agent context.
type Game struct {
	Wealth         int64
	Reputation     int
	Heat           int
	TerritoryCount int
	MaxHostility   int
	Turn           int
}

// NewGame snapshots the family-level numbers from state.
func NewGame(s *types.State) Game {
	return Game{
		Wealth:         s.Wealth,
		Reputation:     s.Reputation,
		Heat:           s.Heat,
		TerritoryCount: state.TerritoryCount(s),
		MaxHostility:   state.MaxRivalHostility(s),
		Turn:           s.Turn,
	}
}

func (g Game) WeakFinancially() bool   { return g.Wealth < LowWealth }
func (g Game) StrongFinancially() bool { return g.Wealth > StrongWealth }
func (g Game) LowReputation() bool     { return g.Reputation < LowRespect }
func (g Game) HighReputation() bool    { return g.Reputation > HighRespect }
func (g Game) UnderHeat() bool         { return g.Heat > HighHeat }
func (g Game) UnderSevereHeat() bool   { return g.Heat > SevereHeat }
func (g Game) HeatMaxed() bool         { return g.Heat >= 100 }
func (g Game) Broke() bool             { return g.Wealth <= 0 }

// Vulnerable: weak financially and either disrespected or under heat.
func (g Game) Vulnerable() bool {
	return g.WeakFinancially() && (g.LowReputation() || g.UnderHeat())
}

// Dominating: strong financially, highly respected, holding enough turf.
func (g Game) Dominating() bool {
	return g.StrongFinancially() && g.HighReputation() && g.TerritoryCount >= DominatingTurf
}

// FamilyStrength is the scalar rivals compare themselves against:
// respect plus ten points per territory held.
func (g Game) FamilyStrength() int {
	return g.Reputation/2 + 10*g.TerritoryCount
}

// Agent extends the game snapshot with the acting persona's sliders.
type Agent struct {
	Game
	Persona types.Persona
}

// NewAgent snapshots state plus the autonomous actor's persona.
func NewAgent(s *types.State, p types.Persona) Agent {
	return Agent{Game: NewGame(s), Persona: p}
}

func (a Agent) Aggressive() bool { return a.Persona.Aggression > HighRespect }
func (a Agent) Greedy() bool     { return a.Persona.Greed > HighRespect }
func (a Agent) Ambitious() bool  { return a.Persona.Ambition > HighRespect }
func (a Agent) Cautious() bool   { return a.Persona.Caution > HighRespect }
func (a Agent) Loyal() bool      { return a.Persona.Loyalty > HighRespect }

// Turf is the valuation snapshot for one territory.
type Turf struct {
	Territory types.Territory
}

// NewTurf snapshots a single territory.
func NewTurf(t types.Territory) Turf {
	return Turf{Territory: t}
}

// Turf valuation thresholds.
const (
	primeRevenue = 15_000
	lowRiskHeat  = 3
	highRiskHeat = 7
)

func (t Turf) Disputed() bool   { return t.Territory.Disputed }
func (t Turf) HighValue() bool  { return t.Territory.Revenue >= primeRevenue }
func (t Turf) LowRisk() bool    { return t.Territory.HeatGen <= lowRiskHeat }
func (t Turf) HighRisk() bool   { return t.Territory.HeatGen >= highRiskHeat }
func (t Turf) Prime() bool      { return t.HighValue() && t.LowRisk() }
func (t Turf) RiskyButProfitable() bool { return t.HighValue() && t.HighRisk() }

// RivalView pairs one rival with the family-level snapshot it is
// sizing up.
type RivalView struct {
	Game
	Rival types.Rival
}

// NewRival snapshots a rival against the current family state.
func NewRival(s *types.State, r types.Rival) RivalView {
	return RivalView{Game: NewGame(s), Rival: r}
}

const muchWeakerMargin = 30

func (v RivalView) StrongerThanFamily() bool {
	return v.Rival.Strength > v.FamilyStrength()
}

func (v RivalView) MuchWeaker() bool {
	return v.Rival.Strength < v.FamilyStrength()-muchWeakerMargin
}

func (v RivalView) Hostile() bool { return v.Rival.Hostility > HighRespect }
func (v RivalView) AtWar() bool   { return v.Rival.AtWar }

// FamilyExposed: the family invites attack when its finances or its
// reputation are weak.
func (v RivalView) FamilyExposed() bool {
	return v.WeakFinancially() || v.LowReputation()
}

// MissionView merges the player's situation with one candidate mission.
type MissionView struct {
	Wealth  int64
	Respect int
	Heat    int
	Skill   int
	Mission types.Mission
}

// NewMission snapshots the player's numbers against a candidate job.
func NewMission(s *types.State, m types.Mission) MissionView {
	return MissionView{
		Wealth:  s.Wealth,
		Respect: s.Reputation,
		Heat:    s.Heat,
		Skill:   s.Skill,
		Mission: m,
	}
}

// Mission thresholds.
const (
	DesperateWealth = 1_000
	safeRisk        = 4
	richReward      = 50_000
)

func (m MissionView) Desperate() bool     { return m.Wealth < DesperateWealth }
func (m MissionView) SafeJob() bool       { return m.Mission.Risk < safeRisk }
func (m MissionView) RiskyJob() bool      { return m.Mission.Risk >= highRiskHeat }
func (m MissionView) Underqualified() bool { return m.Skill < m.Mission.SkillReq }
func (m MissionView) RichReward() bool    { return m.Mission.Reward >= richReward }
func (m MissionView) TooHot() bool        { return m.Heat > SevereHeat }

// SkillDeficit is how far the player falls short of the requirement,
// never negative. Rejection confidence scales with it.
func (m MissionView) SkillDeficit() int {
	if d := m.Mission.SkillReq - m.Skill; d > 0 {
		return d
	}
	return 0
}

// Dialogue merges a question with the responding persona.
type Dialogue struct {
	Question types.Question
	Persona  types.Persona
}

// NewDialogue snapshots a question against its responder.
func NewDialogue(q types.Question, p types.Persona) Dialogue {
	return Dialogue{Question: q, Persona: p}
}

// Dialogue thresholds.
const (
	sensitiveAbove = 6
	urgentAbove    = 7
)

func (d Dialogue) Enemy() bool    { return d.Question.Relationship < EnemyBelow }
func (d Dialogue) Stranger() bool {
	return d.Question.Relationship >= EnemyBelow && d.Question.Relationship <= FriendAbove
}
func (d Dialogue) Friend() bool      { return d.Question.Relationship > FriendAbove }
func (d Dialogue) CloseFriend() bool { return d.Question.Relationship > CloseFriendOver }

func (d Dialogue) Sensitive() bool { return d.Question.Sensitivity > sensitiveAbove }
func (d Dialogue) Urgent() bool    { return d.Question.Urgency > urgentAbove }

// ProtectingSubject: the responder guards the subject when loyalty to them
// runs high and the asker is not a friend.
func (d Dialogue) ProtectingSubject() bool {
	return d.Question.LoyaltyToSubject > CloseFriendOver && !d.Friend()
}

func (d Dialogue) Proud() bool     { return d.Persona.Pride > HighRespect }
func (d Dialogue) Cautious() bool  { return d.Persona.Caution > HighRespect }
func (d Dialogue) Cunning() bool   { return d.Persona.Cunning > HighRespect }
func (d Dialogue) Dishonest() bool { return d.Persona.Honesty < LowRespect }
func (d Dialogue) Trusting() bool  { return d.Persona.Trust > HighRespect }
