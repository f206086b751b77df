package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"headsup-holdem/holdem"
	"headsup-holdem/holdem/npc"
)

type appConfig struct {
	Table       holdem.Config
	Persona     string
	PersonaFile string
	Goal        npc.MatchGoal
	ThinkDelay  time.Duration
	LogLevel    log.Level
}

// loadConfig reads .env (if present) and the HOLDEM_* environment.
func loadConfig() (appConfig, error) {
	_ = godotenv.Load()

	table := holdem.DefaultConfig()
	table.SmallBlind = int64(atoiDef(os.Getenv("HOLDEM_SMALL_BLIND"), int(table.SmallBlind)))
	table.BigBlind = int64(atoiDef(os.Getenv("HOLDEM_BIG_BLIND"), int(table.BigBlind)))
	table.StartingStack = int64(atoiDef(os.Getenv("HOLDEM_STARTING_STACK"), int(table.StartingStack)))
	table.MaxRaisesPerStreet = atoiDef(os.Getenv("HOLDEM_MAX_RAISES"), table.MaxRaisesPerStreet)
	if s := strings.TrimSpace(os.Getenv("HOLDEM_SEED")); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return appConfig{}, fmt.Errorf("HOLDEM_SEED: %w", err)
		}
		table.Seed = seed
	}
	if b := strings.TrimSpace(os.Getenv("HOLDEM_BUTTON")); b != "" {
		seat, err := holdem.ParseSeat(strings.ToLower(b))
		if err != nil {
			return appConfig{}, fmt.Errorf("HOLDEM_BUTTON: %w", err)
		}
		table.InitialButton = seat
	}

	goal, err := parseGoal(getenv("HOLDEM_GOAL", "bust"))
	if err != nil {
		return appConfig{}, err
	}

	level, err := log.ParseLevel(getenv("HOLDEM_LOG_LEVEL", "warn"))
	if err != nil {
		level = log.WarnLevel
	}

	return appConfig{
		Table:       table,
		Persona:     strings.TrimSpace(os.Getenv("HOLDEM_PERSONA")),
		PersonaFile: strings.TrimSpace(os.Getenv("HOLDEM_PERSONA_FILE")),
		Goal:        goal,
		ThinkDelay:  time.Duration(atoiDef(os.Getenv("HOLDEM_THINK_MS"), 700)) * time.Millisecond,
		LogLevel:    level,
	}, nil
}

// parseGoal accepts "type" or "type:target", e.g. "win_bb:50".
func parseGoal(s string) (npc.MatchGoal, error) {
	kind, target, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	g := npc.MatchGoal{Type: kind, Target: atoiDef(target, 0)}
	switch kind {
	case "win_bb", "survive", "win_pots":
		if g.Target <= 0 {
			return g, fmt.Errorf("HOLDEM_GOAL %q needs a positive target", s)
		}
	case "bust":
	default:
		return g, fmt.Errorf("unknown HOLDEM_GOAL %q", s)
	}
	return g, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
