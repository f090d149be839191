package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	PanelWidth int
	Paused     bool
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "hpp", Scale: 3, TPS: 30, Seed: 1337, PanelWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.Var(&c.Overrides, "set", "sim parameter override in key=value form (repeatable)")
}

// SimConfig returns the overrides as the map handed to sim factories. The
// seed flag is applied unless an explicit seed override is present.
func (c *Config) SimConfig() map[string]string {
	m := c.Overrides.Map()
	if _, ok := m["seed"]; !ok {
		m["seed"] = fmt.Sprint(c.Seed)
	}
	return m
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set validates and appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map converts the list into a map; later keys win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
