package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hometable/internal/game"
	"github.com/lox/hometable/internal/simulator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))
)

// printStandings writes the table's final stacks, biggest first.
func printStandings(w io.Writer, res *simulator.Result) {
	fmt.Fprintln(w, renderStandings(res))
}

func renderStandings(res *simulator.Result) string {
	t := res.Table
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("=== %s (%s %d/%d ante %d) ===",
		t.Name, t.Variant, t.Config.SmallBlind, t.Config.BigBlind, t.Config.Ante)))
	fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("%d hands, %d to showdown", res.Hands, res.Showdowns)))

	players := slices.Clone(t.Players)
	slices.SortStableFunc(players, func(a, b *game.Player) int { return b.Stack - a.Stack })

	for _, p := range players {
		stats := res.Players[p.ID]
		net := 0
		mean, lo, hi := 0.0, 0.0, 0.0
		if stats != nil {
			net = stats.NetChips
			mean = stats.Mean()
			lo, hi = stats.ConfidenceInterval95()
		}
		netText := fmt.Sprintf("%+d", net)
		switch {
		case net > 0:
			netText = winStyle.Render(netText)
		case net < 0:
			netText = lossStyle.Render(netText)
		}
		fmt.Fprintf(&b, "  %-4d %s %6d  %s  %s  %s  %s\n",
			p.Seat,
			nameStyle.Render(fmt.Sprintf("%-12s", p.Name)),
			p.Stack,
			netText,
			mutedStyle.Render(fmt.Sprintf("%.2f bb/hand", mean)),
			mutedStyle.Render(fmt.Sprintf("[%.2f, %.2f]", lo, hi)),
			mutedStyle.Render(fmt.Sprintf("%d wins", p.Wins)))
	}
	if res.Stopped != "" {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render("stopped: "+res.Stopped))
	}
	return b.String()
}
