package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"headsup-holdem/holdem"
	"headsup-holdem/holdem/npc"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel,
		Prefix:          "holdem",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	if len(os.Args) > 1 && os.Args[1] == "replay" {
		if err := runReplay(os.Args[2:], logger); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		return
	}

	if err := play(cfg, logger); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func play(cfg appConfig, logger *log.Logger) error {
	ui := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Heads", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Up", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	reg := npc.DefaultRegistry()
	if cfg.PersonaFile != "" {
		if err := reg.LoadFromFile(cfg.PersonaFile); err != nil {
			return err
		}
	}
	persona, err := choosePersona(reg, cfg.Persona)
	if err != nil {
		return err
	}

	session, err := holdem.NewSession(cfg.Table, holdem.WithLogger(logger))
	if err != nil {
		return err
	}
	seed := cfg.Table.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	driver := npc.NewDriver(session, holdem.SeatOpponent, npc.NewBrain(persona, seed),
		npc.WithLogger(logger), npc.WithThinkDelay(cfg.ThinkDelay))
	progress := npc.NewMatchProgress(cfg.Goal, cfg.Table.StartingStack)

	pterm.Info.Printfln("%s: %s", pterm.LightCyan(persona.Name), persona.Tagline)
	pterm.Info.Printfln("Goal: %s. Blinds %d/%d, stacks %d.", cfg.Goal, cfg.Table.SmallBlind, cfg.Table.BigBlind, cfg.Table.StartingStack)

	for {
		if _, err := session.StartHand(); err != nil {
			return err
		}
		if err := playHand(session, driver, persona.Name); err != nil {
			return err
		}

		snap := session.ViewFor(holdem.SeatPlayer)
		renderTable(snap, persona.Name)
		renderResult(snap, persona.Name)
		progress.Record(snap)
		ui.Info("hand finished", "hand", snap.HandNo, "stack", progress.CurrentStack, "opponent", progress.OppStack)

		switch {
		case progress.Complete(cfg.Table.BigBlind):
			pterm.Success.Printfln("Goal reached after %d hands: %s", progress.HandsPlayed, cfg.Goal)
			return nil
		case progress.Failed():
			pterm.Error.Println("You are out of chips, better luck next time!")
			if !askReset(session, progress) {
				return nil
			}
			continue
		case progress.OppStack == 0:
			pterm.Success.Printfln("%s is busted!", persona.Name)
			if !askReset(session, progress) {
				return nil
			}
			continue
		}

		next, err := pterm.DefaultInteractiveSelect.WithOptions([]string{"Next hand", "Reset session", "Quit"}).Show()
		if err != nil {
			return err
		}
		switch next {
		case "Reset session":
			resetSession(session, progress)
		case "Quit":
			pterm.Println("Thank you for playing...")
			return nil
		}
	}
}

func playHand(session *holdem.Session, driver *npc.Driver, opponent string) error {
	for {
		snap := session.ViewFor(holdem.SeatPlayer)
		if snap.HandOver {
			return nil
		}
		if snap.ToAct == driver.Seat() {
			if err := opponentTurn(driver); err != nil {
				return err
			}
			continue
		}

		renderTable(snap, opponent)
		legal, err := session.LegalActions(holdem.SeatPlayer)
		if err != nil {
			return err
		}
		action, err := promptAction(legal)
		if err != nil {
			return err
		}
		if _, err := session.ApplyAction(holdem.SeatPlayer, action); err != nil {
			var ae *holdem.ActionError
			if errors.As(err, &ae) {
				pterm.Warning.Println(ae.Error())
				continue
			}
			return err
		}
	}
}

type npcOutcome struct {
	dec npc.Decision
	err error
}

// opponentTurn waits for the scheduled decision behind a spinner.
func opponentTurn(driver *npc.Driver) error {
	name := driver.Brain().Name()
	spinner, _ := pterm.DefaultSpinner.Start(name + " is thinking...")
	done := make(chan npcOutcome, 1)
	driver.Schedule(func(dec npc.Decision, _ holdem.Snapshot, err error) {
		done <- npcOutcome{dec: dec, err: err}
	})
	out := <-done
	if out.err != nil {
		spinner.Fail(out.err.Error())
		return out.err
	}
	spinner.Success(fmt.Sprintf("%s: %s", name, out.dec.Action))
	return nil
}

func choosePersona(reg *npc.PersonaRegistry, id string) (*npc.NPCPersona, error) {
	if id != "" {
		p := reg.Get(id)
		if p == nil {
			return nil, fmt.Errorf("unknown persona %q", id)
		}
		return p, nil
	}
	all := reg.All()
	if len(all) == 0 {
		return nil, errors.New("no personas loaded")
	}
	labels := make([]string, len(all))
	for i, p := range all {
		labels[i] = fmt.Sprintf("%s (level %d) %s", p.Name, p.Difficulty, p.Tagline)
	}
	selected, err := pterm.DefaultInteractiveSelect.WithOptions(labels).WithDefaultText("Choose your opponent").Show()
	if err != nil {
		return nil, err
	}
	for i, l := range labels {
		if l == selected {
			return all[i], nil
		}
	}
	return all[0], nil
}

func askReset(session *holdem.Session, progress *npc.MatchProgress) bool {
	again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Start over with fresh stacks?").Show()
	if again {
		resetSession(session, progress)
	}
	return again
}

func resetSession(session *holdem.Session, progress *npc.MatchProgress) {
	session.ResetSession()
	start := session.Config().StartingStack
	*progress = *npc.NewMatchProgress(progress.Goal, start)
	pterm.Info.Println("Session reset.")
}
