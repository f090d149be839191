package lga

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RuleTable maps every pre-collision state to its post-collision state.
type RuleTable [NumStates]State

// NewRuleTable builds a table from exactly NumStates entries.
func NewRuleTable(entries []State) (RuleTable, error) {
	var r RuleTable
	if len(entries) != NumStates {
		return r, fmt.Errorf("%w: got %d entries, want %d", ErrInvalidRuleTable, len(entries), NumStates)
	}
	copy(r[:], entries)
	if err := r.Validate(); err != nil {
		return RuleTable{}, err
	}
	return r, nil
}

// ParseRuleTable parses a comma or space separated list of 16 values in [0,15].
// Values may be decimal or 0x-prefixed hexadecimal.
func ParseRuleTable(s string) (RuleTable, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	entries := make([]State, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 0, 8)
		if err != nil {
			return RuleTable{}, fmt.Errorf("%w: entry %d: %v", ErrInvalidRuleTable, i, err)
		}
		entries = append(entries, State(v))
	}
	return NewRuleTable(entries)
}

// Validate checks that every entry is a valid state.
func (r RuleTable) Validate() error {
	for i, s := range r {
		if !s.Valid() {
			return fmt.Errorf("%w: entry %d maps to %d", ErrInvalidRuleTable, i, s)
		}
	}
	return nil
}

// Apply returns the post-collision state for s.
func (r RuleTable) Apply(s State) State { return r[s&Full] }

// IsPermutation reports whether the table is a bijection on the state space.
func (r RuleTable) IsPermutation() bool {
	var seen [NumStates]bool
	for _, s := range r {
		if !s.Valid() || seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

// ConservesParticles reports whether every entry keeps the particle count.
func (r RuleTable) ConservesParticles() bool {
	for i, s := range r {
		if State(i).Count() != s.Count() {
			return false
		}
	}
	return true
}

// MapsEmptyToEmpty reports whether empty cells stay empty under collision.
func (r RuleTable) MapsEmptyToEmpty() bool { return r[Empty] == Empty }

// String renders the table in the form accepted by ParseRuleTable.
func (r RuleTable) String() string {
	parts := make([]string, len(r))
	for i, s := range r {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}

// Identity returns the table that leaves every state unchanged.
func Identity() RuleTable {
	var r RuleTable
	for i := range r {
		r[i] = State(i)
	}
	return r
}

// HPP returns the classic HPP collision table: head-on pairs rotate by a
// quarter turn, every other configuration passes through.
func HPP() RuleTable {
	r := Identity()
	r[Up|Down] = Right | Left
	r[Right|Left] = Up | Down
	return r
}

// BounceBack reverses every particle and rotates head-on pairs.
func BounceBack() RuleTable {
	return RuleTable{
		Empty,
		Down,
		Left,
		Down | Left,
		Up,
		Right | Left,
		Up | Left,
		Up | Down | Left,
		Right,
		Right | Down,
		Up | Down,
		Right | Down | Left,
		Up | Right,
		Up | Right | Down,
		Up | Right | Left,
		Full,
	}
}

var namedRules = map[string]func() RuleTable{
	"identity": Identity,
	"hpp":      HPP,
	"bounce":   BounceBack,
}

// RuleByName looks up a built-in table.
func RuleByName(name string) (RuleTable, bool) {
	f, ok := namedRules[strings.ToLower(name)]
	if !ok {
		return RuleTable{}, false
	}
	return f(), true
}

// RuleNames lists the built-in tables in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(namedRules))
	for name := range namedRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveRule accepts either a built-in name or a ParseRuleTable list.
func ResolveRule(text string) (RuleTable, error) {
	if r, ok := RuleByName(strings.TrimSpace(text)); ok {
		return r, nil
	}
	return ParseRuleTable(text)
}
