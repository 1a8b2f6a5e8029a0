// Package display renders table activity to a terminal. It hangs off
// the engine's observer interface; the engine never prints anything
// itself.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
	"github.com/jcbhmphrs733/texasholdem2/internal/game"
)

// Styles contains the lipgloss styling for console output
type Styles struct {
	Header    lipgloss.Style
	Street    lipgloss.Style
	Action    lipgloss.Style
	Winner    lipgloss.Style
	Pot       lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates the default style set
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Street: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Console implements game.Observer and writes a hand-history style
// report as play progresses.
type Console struct {
	w          io.Writer
	styles     *Styles
	handNumber int
}

// NewConsole creates a console observer writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, styles: NewStyles()}
}

func (c *Console) HandStarted(handID string, players []game.PlayerView, dealerPos, smallBlind, bigBlind int) {
	c.handNumber++
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.styles.Header.Render(fmt.Sprintf("Hand #%d", c.handNumber)))
	fmt.Fprintf(c.w, "%d players, blinds %d/%d\n", len(players), smallBlind, bigBlind)
	for _, p := range players {
		marker := ""
		if p.Dealer {
			marker = " (dealer)"
		}
		fmt.Fprintf(c.w, "  %s: %d chips%s\n", p.Name, p.Chips, marker)
	}
}

func (c *Console) ActionApplied(result game.ActionResult, pot int) {
	line := fmt.Sprintf("%s %s", result.PlayerName, result.Display)
	if result.Amount > 0 {
		line = fmt.Sprintf("%s %d", line, result.Amount)
	}
	fmt.Fprintf(c.w, "  %s %s\n",
		c.styles.Action.Render(line),
		c.styles.Muted.Render(fmt.Sprintf("(pot %d)", pot)))
}

func (c *Console) CommunityDealt(street game.Street, cards []deck.Card) {
	fmt.Fprintf(c.w, "%s %s\n",
		c.styles.Street.Render(fmt.Sprintf("*** %s ***", strings.ToUpper(street.String()))),
		c.FormatCards(cards))
}

func (c *Console) PotAwarded(handID string, outcomes []game.PotOutcome) {
	for _, out := range outcomes {
		line := fmt.Sprintf("%s (%d) to %s", out.Label, out.Amount, strings.Join(out.Winners, ", "))
		if out.HandName != "" {
			line += " with " + out.HandName
		}
		fmt.Fprintf(c.w, "  %s\n", c.styles.Winner.Render(line))
	}
}

func (c *Console) PlayerEliminated(name string) {
	fmt.Fprintf(c.w, "  %s\n", c.styles.Muted.Render(name+" eliminated"))
}

// FormatCards renders cards with suit coloring
func (c *Console) FormatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			parts[i] = c.styles.CardRed.Render(card.String())
		} else {
			parts[i] = c.styles.CardBlack.Render(card.String())
		}
	}
	return strings.Join(parts, " ")
}
