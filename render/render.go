// Package render draws game states for the terminal.
package render

import (
	"fmt"
	"homeworlds/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorStyles = map[game.Color]lipgloss.Style{
		game.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		game.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		game.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		game.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	}

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	styleSystem = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("243")).
			Padding(0, 1)

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// Piece renders a piece type in its color, e.g. "large green".
func Piece(t game.PieceType) string {
	return colorStyles[t.Color()].Render(t.String())
}

// State renders the bank and every system in play.
func State(gs *game.GameState) string {
	var b strings.Builder

	header := fmt.Sprintf("turn %d, %s to act", gs.Turn, gs.Player())
	if winner, ok := gs.Winner(); ok {
		header = fmt.Sprintf("turn %d, %s wins", gs.Turn, winner)
	} else if gs.Over() {
		header = fmt.Sprintf("turn %d, draw", gs.Turn)
	}
	b.WriteString(styleHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(Bank(gs.Bank))
	b.WriteString("\n")

	for _, s := range gs.Systems() {
		b.WriteString(System(s))
		b.WriteString("\n")
	}
	return b.String()
}

// Bank renders the stock of each piece type that is not empty.
func Bank(bank game.Bank) string {
	var stock []string
	for _, t := range game.PieceTypes() {
		if n := bank.Count(t); n > 0 {
			stock = append(stock, fmt.Sprintf("%s x%d", Piece(t), n))
		}
	}
	return styleLabel.Render("bank: ") + strings.Join(stock, ", ")
}

// System renders a system's stars and each player's ships in a box.
func System(s game.System) string {
	var stars []string
	for _, star := range s.Stars() {
		stars = append(stars, Piece(star.Type))
	}

	lines := []string{
		styleHeader.Render(s.ID().String()),
		styleLabel.Render("stars: ") + strings.Join(stars, ", "),
	}
	for _, p := range game.Players {
		var ships []string
		for _, ship := range s.Ships() {
			if ship.Owner == p {
				ships = append(ships, Piece(ship.Type))
			}
		}
		if len(ships) > 0 {
			lines = append(lines, styleLabel.Render(p.String()+": ")+strings.Join(ships, ", "))
		}
	}
	return styleSystem.Render(strings.Join(lines, "\n"))
}
