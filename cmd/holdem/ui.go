package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"headsup-holdem/card"
	"headsup-holdem/holdem"
)

func seatLabel(s holdem.Seat, opponent string) string {
	if s == holdem.SeatPlayer {
		return "You"
	}
	return opponent
}

func cardsText(cs []card.Card) string {
	if len(cs) == 0 {
		return "-- --"
	}
	return card.CardList(cs).String()
}

func seatBox(snap holdem.Snapshot, s holdem.Seat, opponent string) string {
	ss := snap.Seat(s)
	title := seatLabel(s, opponent)
	if snap.Button == s {
		title += " (D)"
	}
	status := pterm.LightGreen("Active")
	switch {
	case ss.LastAction == holdem.ActionFold:
		status = pterm.LightRed("Folded")
	case ss.AllIn:
		status = pterm.LightMagenta("All-in")
	case snap.ToAct == s:
		status = pterm.LightYellow("To act")
	}
	body := fmt.Sprintf("%s\nStack: %d\nBet: %d\n%s", status, ss.Stack, ss.Bet, pterm.BgGreen.Sprint(" "+cardsText(ss.HandCards)+" "))
	if ss.MadeHand != "" {
		body += "\n" + pterm.LightCyan(ss.MadeHand)
	}
	return pterm.DefaultBox.WithHorizontalPadding(4).WithTitle(title).WithTitleTopLeft().Sprint(body)
}

func boardBox(snap holdem.Snapshot) string {
	body := fmt.Sprintf("%s\nPot: %d   Street: %s", cardsText(snap.CommunityCards), snap.Pot, snap.Street)
	if !snap.HandOver && snap.BetToMatch > 0 {
		body += fmt.Sprintf("\nTo match: %d   Raises: %d/%d", snap.BetToMatch, snap.RaisesThisStreet, snap.MaxRaises)
	}
	return pterm.DefaultBox.WithHorizontalPadding(4).WithTitle(pterm.LightYellow("|BOARD|")).WithTitleTopCenter().Sprint(body)
}

func renderTable(snap holdem.Snapshot, opponent string) {
	_ = pterm.DefaultPanel.WithPanels(pterm.Panels{
		{{Data: seatBox(snap, holdem.SeatOpponent, opponent)}},
		{{Data: boardBox(snap)}},
		{{Data: seatBox(snap, holdem.SeatPlayer, opponent)}},
	}).Render()
}

func renderResult(snap holdem.Snapshot, opponent string) {
	r := snap.Result
	if r == nil {
		return
	}
	var b strings.Builder
	if r.Reason == holdem.SettleFold {
		b.WriteString(pterm.Sprintfln("%s takes down %d uncontested", pterm.LightCyan(seatLabel(r.Winners[0], opponent)), r.Pot))
	} else {
		for _, s := range holdem.Seats {
			sr := r.Seat(s)
			line := fmt.Sprintf("%s: %s  %s", seatLabel(s, opponent), cardsText(sr.HandCards), sr.Description)
			if sr.IsWinner {
				line = pterm.LightGreen(line + fmt.Sprintf("  +%d", sr.WinAmount))
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("Board: " + cardsText(snap.CommunityCards) + "\n")
	}
	if r.ExcessAmount > 0 {
		b.WriteString(fmt.Sprintf("%d uncalled returned to %s\n", r.ExcessAmount, seatLabel(r.ExcessSeat, opponent)))
	}
	title := pterm.LightGreen("|SHOWDOWN|")
	if r.Reason == holdem.SettleFold {
		title = pterm.LightGreen("|FOLD|")
	}
	pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).
		WithTitle(title).WithTitleTopCenter().Println(strings.TrimRight(b.String(), "\n"))
}

// actionOption pairs a menu label with how to build the action.
type actionOption struct {
	label string
	kind  holdem.ActionType
	total int64 // 0: ask for an amount
}

func actionOptions(l holdem.Legal) []actionOption {
	var out []actionOption
	for _, t := range l.Actions {
		switch t {
		case holdem.ActionFold, holdem.ActionCheck:
			out = append(out, actionOption{label: t.String(), kind: t})
		case holdem.ActionCall:
			out = append(out, actionOption{label: fmt.Sprintf("call %d", l.ToCall), kind: t})
		case holdem.ActionBet, holdem.ActionRaise:
			if l.MinTotal < l.MaxTotal {
				out = append(out, actionOption{label: fmt.Sprintf("%s (%d-%d)", t, l.MinTotal, l.MaxTotal), kind: t})
			}
			out = append(out, actionOption{label: fmt.Sprintf("all-in %d", l.MaxTotal), kind: t, total: l.MaxTotal})
		}
	}
	return out
}

// promptAction asks the human seat for one legal action.
func promptAction(l holdem.Legal) (holdem.Action, error) {
	opts := actionOptions(l)
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.label
	}
	selected, err := pterm.DefaultInteractiveSelect.WithOptions(labels).WithDefaultText("Your action").Show()
	if err != nil {
		return nil, err
	}
	var opt actionOption
	for _, o := range opts {
		if o.label == selected {
			opt = o
		}
	}

	total := opt.total
	if (opt.kind == holdem.ActionBet || opt.kind == holdem.ActionRaise) && total == 0 {
		for {
			raw, err := pterm.DefaultInteractiveTextInput.
				WithDefaultText(fmt.Sprintf("%s to (%d-%d)", opt.kind, l.MinTotal, l.MaxTotal)).
				WithDefaultValue(strconv.FormatInt(l.MinTotal, 10)).Show()
			if err != nil {
				return nil, err
			}
			n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err == nil && n >= l.MinTotal && n <= l.MaxTotal {
				total = n
				break
			}
			pterm.Warning.Printfln("enter a total between %d and %d", l.MinTotal, l.MaxTotal)
		}
	}
	return holdem.NewAction(opt.kind, total)
}
