package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBind(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewConfig()
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "hpp-walls", "-scale", "2", "-set", "w=64", "-set", "rule=bounce", "-set", "w=32"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "hpp-walls" || cfg.Scale != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.SimConfig()
	if m["w"] != "32" || m["rule"] != "bounce" || m["seed"] != "1337" {
		t.Fatalf("unexpected sim config %v", m)
	}
}

func TestConfigRejectsMalformedOverride(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	NewConfig().Bind(fs)
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected error for override without '='")
	}
	if err := fs.Parse([]string{"-scale", "big"}); err == nil {
		t.Fatal("expected error for malformed number")
	}
}
