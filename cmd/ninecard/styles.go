package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/ninecard/internal/deck"
	"github.com/lox/ninecard/internal/game"
)

// Static styles for terminal output
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Bold(true)

	wildCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)
)

// renderCard colours a single card by suit
func renderCard(c deck.Card) string {
	switch {
	case c.Wild:
		return wildCardStyle.Render(c.String())
	case c.IsRed():
		return redCardStyle.Render(c.String())
	default:
		return blackCardStyle.Render(c.String())
	}
}

// renderCards renders a run of cards separated by spaces
func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

// renderArrangement renders the three layers top-first with their
// evaluation labels
func renderArrangement(a game.Arrangement) string {
	var b strings.Builder
	names := [3]string{"top", "middle", "bottom"}
	for i, layer := range a.Layers() {
		eval := layer.Evaluate()
		b.WriteString(labelStyle.Render(names[i]+":") + " ")
		b.WriteString(renderCards(layer))
		b.WriteString("  " + labelStyle.Render(eval.Label))
		if i < 2 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
