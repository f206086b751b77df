package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/pterm/pterm"

	"headsup-holdem/holdem"
	"headsup-holdem/replay"
)

// runReplay loads a HandSpec JSON file and prints the generated tape.
// With --wire the camelCase wire form is written to stdout instead.
func runReplay(args []string, logger *log.Logger) error {
	var path string
	wire := false
	for _, a := range args {
		switch a {
		case "--wire":
			wire = true
		default:
			path = a
		}
	}
	if path == "" {
		return errors.New("usage: holdem replay <hand.json> [--wire]")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var spec replay.HandSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	tape, err := replay.GenerateReplayTape(spec, holdem.WithLogger(logger))
	if err != nil {
		var re *replay.ReplayError
		if errors.As(err, &re) && re.Expected != nil {
			pterm.Warning.Printfln("expected %s to act on %s, legal: %v", re.Expected.Seat, re.Expected.Street, re.Expected.LegalActions)
		}
		return err
	}

	if wire {
		out, err := json.MarshalIndent(replay.ToWireReplayTape(tape), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	data := pterm.TableData{{"#", "Event", "Payload"}}
	for _, e := range tape.Events {
		payload, err := e.Value.MarshalJSON()
		if err != nil {
			return err
		}
		data = append(data, []string{strconv.FormatUint(e.Seq, 10), e.Type, string(payload)})
	}
	pterm.DefaultSection.Printfln("Replay of %s (hero %s)", path, tape.Hero)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
