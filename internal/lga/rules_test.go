package lga

import (
	"errors"
	"testing"
)

func TestNewRuleTableRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 15, 17} {
		_, err := NewRuleTable(make([]State, n))
		if !errors.Is(err, ErrInvalidRuleTable) {
			t.Fatalf("len %d: expected ErrInvalidRuleTable, got %v", n, err)
		}
	}
}

func TestNewRuleTableRejectsOutOfRangeEntry(t *testing.T) {
	entries := make([]State, NumStates)
	entries[7] = 16
	if _, err := NewRuleTable(entries); !errors.Is(err, ErrInvalidRuleTable) {
		t.Fatalf("expected ErrInvalidRuleTable, got %v", err)
	}
}

func TestParseRuleTableRoundTrip(t *testing.T) {
	want := BounceBack()
	got, err := ParseRuleTable(want.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, err := ParseRuleTable("0,1,2"); !errors.Is(err, ErrInvalidRuleTable) {
		t.Fatalf("short table: expected ErrInvalidRuleTable, got %v", err)
	}
	if _, err := ParseRuleTable("0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,x"); !errors.Is(err, ErrInvalidRuleTable) {
		t.Fatalf("bad entry: expected ErrInvalidRuleTable, got %v", err)
	}
}

func TestBuiltinRuleProperties(t *testing.T) {
	for _, name := range RuleNames() {
		r, ok := RuleByName(name)
		if !ok {
			t.Fatalf("RuleByName(%q) missing", name)
		}
		if !r.IsPermutation() {
			t.Fatalf("%s: expected a permutation", name)
		}
		if !r.ConservesParticles() {
			t.Fatalf("%s: expected particle conservation", name)
		}
		if !r.MapsEmptyToEmpty() {
			t.Fatalf("%s: expected Empty -> Empty", name)
		}
	}

	hpp := HPP()
	if hpp.Apply(Up|Down) != Right|Left || hpp.Apply(Right|Left) != Up|Down {
		t.Fatal("HPP must rotate head-on pairs")
	}
	if hpp.Apply(Up|Right) != Up|Right {
		t.Fatal("HPP must pass non head-on states through")
	}

	bb := BounceBack()
	for _, d := range Directions {
		if bb.Apply(d) != Opposite(d) {
			t.Fatalf("BounceBack(%v) = %v, want %v", d, bb.Apply(d), Opposite(d))
		}
	}
}

func TestNonPermutationDetected(t *testing.T) {
	r := Identity()
	r[Up] = Empty
	if r.IsPermutation() {
		t.Fatal("table with duplicate Empty output reported as permutation")
	}
	if r.ConservesParticles() {
		t.Fatal("table dropping a particle reported as conserving")
	}
}

func TestResolveRule(t *testing.T) {
	r, err := ResolveRule(" HPP ")
	if err != nil || r != HPP() {
		t.Fatalf("ResolveRule(HPP) = %v, %v", r, err)
	}
	r, err = ResolveRule(Identity().String())
	if err != nil || r != Identity() {
		t.Fatalf("ResolveRule(list) = %v, %v", r, err)
	}
	if _, err := ResolveRule("nope"); err == nil {
		t.Fatal("expected error for unknown rule")
	}
}
