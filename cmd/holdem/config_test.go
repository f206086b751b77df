package main

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"headsup-holdem/holdem"
	"headsup-holdem/holdem/npc"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"HOLDEM_SMALL_BLIND", "HOLDEM_BIG_BLIND", "HOLDEM_STARTING_STACK", "HOLDEM_MAX_RAISES",
		"HOLDEM_SEED", "HOLDEM_BUTTON", "HOLDEM_GOAL", "HOLDEM_LOG_LEVEL", "HOLDEM_PERSONA", "HOLDEM_PERSONA_FILE", "HOLDEM_THINK_MS"} {
		t.Setenv(k, "")
	}
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if diff := cmp.Diff(holdem.DefaultConfig(), cfg.Table); diff != "" {
		t.Fatalf("table config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Goal != (npc.MatchGoal{Type: "bust"}) {
		t.Fatalf("goal = %+v", cfg.Goal)
	}
	if cfg.ThinkDelay != 700*time.Millisecond || cfg.LogLevel != log.WarnLevel {
		t.Fatalf("delay=%v level=%v", cfg.ThinkDelay, cfg.LogLevel)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HOLDEM_SMALL_BLIND", "25")
	t.Setenv("HOLDEM_BIG_BLIND", "50")
	t.Setenv("HOLDEM_STARTING_STACK", "5000")
	t.Setenv("HOLDEM_MAX_RAISES", "4")
	t.Setenv("HOLDEM_SEED", "42")
	t.Setenv("HOLDEM_BUTTON", "Player")
	t.Setenv("HOLDEM_GOAL", "win_bb:20")
	t.Setenv("HOLDEM_LOG_LEVEL", "debug")
	t.Setenv("HOLDEM_PERSONA", "hard")
	t.Setenv("HOLDEM_THINK_MS", "bogus")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	tc := cfg.Table
	if tc.SmallBlind != 25 || tc.BigBlind != 50 || tc.StartingStack != 5000 || tc.MaxRaisesPerStreet != 4 || tc.Seed != 42 {
		t.Fatalf("unexpected table config: %+v", tc)
	}
	if tc.InitialButton != holdem.SeatPlayer {
		t.Fatalf("button = %v", tc.InitialButton)
	}
	if cfg.Goal != (npc.MatchGoal{Type: "win_bb", Target: 20}) || cfg.Persona != "hard" {
		t.Fatalf("goal=%+v persona=%q", cfg.Goal, cfg.Persona)
	}
	if cfg.LogLevel != log.DebugLevel || cfg.ThinkDelay != 700*time.Millisecond {
		t.Fatalf("level=%v delay=%v", cfg.LogLevel, cfg.ThinkDelay)
	}
}

func TestParseGoal(t *testing.T) {
	cases := []struct {
		in      string
		want    npc.MatchGoal
		wantErr bool
	}{
		{in: "bust", want: npc.MatchGoal{Type: "bust"}},
		{in: "survive:30", want: npc.MatchGoal{Type: "survive", Target: 30}},
		{in: "WIN_POTS:10", want: npc.MatchGoal{Type: "win_pots", Target: 10}},
		{in: "win_bb", wantErr: true},
		{in: "double", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseGoal(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseGoal(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("parseGoal(%q) = %+v, %v", tc.in, got, err)
		}
	}
}
