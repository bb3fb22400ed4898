package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/osse101/ColorRush_Go/internal/domain"
)

const (
	clearScreen = "\033[H\033[2J"
	helpLine    = "[r]ed [g]reen [v]iolet   [p]ause  [x] reset  [a]utoplay  [q]uit"
)

var (
	colorPrinters = map[domain.Color]*color.Color{
		domain.ColorRed:    color.New(color.FgRed, color.Bold),
		domain.ColorGreen:  color.New(color.FgGreen, color.Bold),
		domain.ColorViolet: color.New(color.FgMagenta, color.Bold),
	}
	winPrinter   = color.New(color.FgGreen, color.Bold)
	lossPrinter  = color.New(color.FgRed)
	dimPrinter   = color.New(color.Faint)
	titlePrinter = color.New(color.FgYellow, color.Bold)
)

func paint(c domain.Color) string {
	if p, ok := colorPrinters[c]; ok {
		return p.Sprint(c.DisplayName())
	}
	return dimPrinter.Sprint(c.DisplayName())
}

// swatch is the one-letter history marker for a round
func swatch(c domain.Color) string {
	if p, ok := colorPrinters[c]; ok {
		return p.Sprint(string(c)[:1])
	}
	return "?"
}

// render draws the whole screen for snap. Raw terminals need explicit carriage returns.
func render(w io.Writer, snap domain.Snapshot, raw bool) {
	var b strings.Builder

	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "%s   round %d   balance %d coins", titlePrinter.Sprint("COLOR RUSH"), snap.RoundNumber, snap.CoinBalance)
	if snap.IsPaused {
		b.WriteString("   " + color.YellowString("[PAUSED]"))
	}
	if snap.AutoAdvance {
		b.WriteString("   " + dimPrinter.Sprint("[AUTO]"))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Phase: %-10s", snap.Phase)
	if snap.Phase == domain.PhaseSelection {
		fmt.Fprintf(&b, " %2ds left", snap.TimeRemaining)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Your pick: %s\n", paint(snap.CurrentSelection))
	if snap.Phase == domain.PhaseResult {
		fmt.Fprintf(&b, "Result:    %s  %s\n", paint(snap.CurrentResult), outcomeText(snap))
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("History:   ")
	if len(snap.History) == 0 {
		b.WriteString(dimPrinter.Sprint("none yet"))
	}
	for _, r := range snap.History {
		b.WriteString(swatch(r.ResultColor) + " ")
	}
	b.WriteString("\n")

	s := snap.Stats
	fmt.Fprintf(&b, "Stats:     played %d  wins %d  losses %d  win rate %.0f%%  net %+d\n\n",
		s.RoundsPlayed, s.Wins, s.Losses, s.WinRate()*100, s.NetCoins)

	b.WriteString(dimPrinter.Sprint(helpLine))
	b.WriteString("\n")

	out := b.String()
	if raw {
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	_, _ = io.WriteString(w, out)
}

func outcomeText(snap domain.Snapshot) string {
	switch snap.LastOutcome {
	case domain.OutcomeWin:
		return winPrinter.Sprint("WIN")
	case domain.OutcomeLoss:
		return lossPrinter.Sprint("LOSS")
	}
	return dimPrinter.Sprint("no pick")
}
