// Package types defines the shared data structures for the Omerta engine.
// Plain definitions only; behavior lives in the engine packages.
package types

// Territory is a revenue-producing racket controlled by some family.
// Territories are never deleted; losing one is an ownership change.
type Territory struct {
	Name     string
	Owner    string // controlling family name
	Revenue  int64  // weekly take in dollars
	HeatGen  int    // heat generated per collection, 0-10
	Kind     string // racket kind: "protection", "gambling", "smuggling", ...
	Disputed bool
}

// Rival is a competing family.
type Rival struct {
	Name      string
	Strength  int // 0-100
	Hostility int // 0-100, toward the player family
	AtWar     bool
}

// Persona is the unified trait bag. One type serves agent personality,
// player personality, and dialogue personas; every slider is 0-100.
type Persona struct {
	Name       string
	Aggression int
	Greed      int
	Loyalty    int
	Ambition   int
	Pride      int
	Caution    int
	Cunning    int
	Trust      int
	Honesty    int
}

// Mission is a candidate job offered to the player.
type Mission struct {
	Name     string
	Payer    string
	Risk     int   // 0-10
	Reward   int64 // dollars on completion
	SkillReq int   // 0-100
}

// Question is one conversational probe put to a persona.
type Question struct {
	Subject          string
	Sensitivity      int // 0-10
	Urgency          int // 0-10
	Relationship     int // asker→responder, -100..100
	AskerIsCop       bool
	LoyaltyToSubject int // responder's loyalty to the subject, 0-100
}

// ResponseDecision is the dialogue module's output: whether to answer,
// lie, or bargain — never the response text itself.
type ResponseDecision struct {
	WillAnswer           bool
	WillLie              bool
	WillBargain          bool
	Reason               string
	RelationshipModifier int    // applied to the asker relationship by the caller
	ForcedType           string // optional response type override ("denial", ...)
	Override             string // optional literal response text
}

// Decision is the output of evaluating one rule table.
type Decision struct {
	Verdict    string
	RuleID     string
	RuleName   string
	Confidence int // 0-100
	Reason     string
	Trace      []string
}

// ScenarioDef holds scenario metadata and starting numbers from Lua.
type ScenarioDef struct {
	Title       string
	Author      string
	Version     string
	Intro       string
	Family      string // the player family's name
	Wealth      int64
	Reputation  int
	Heat        int
	Skill       int
	Crew        int
	CrewLoyalty int
}

// State is the complete mutable simulation state. All evaluation against
// one State is synchronous and exclusive; independent States never share data.
type State struct {
	Family      string
	Wealth      int64 // signed, no floor
	Reputation  int   // 0-100
	Heat        int   // 0-100
	Skill       int   // 0-100
	Crew        int
	CrewLoyalty int // 0-100
	Turn        int
	Territories []Territory // declaration order preserved
	Rivals      []Rival
	EventLog    []string // append-only
	RNGSeed     int64
	RNGPosition int64
}
