package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tenpair/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("252"))

	emptyCellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238"))

	cursorCellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	eraserCellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("160")).
			Bold(true)

	selectedCellStyle = lipgloss.NewStyle().
				Width(3).
				Align(lipgloss.Center).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("214")).
				Bold(true)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))
)

// renderBoard draws the grid with the cursor and current selection
// highlighted. When erasing is set the cursor uses the eraser highlight.
func renderBoard(s *engine.Session, cursor int, erasing bool) string {
	board := s.Board()
	var b strings.Builder

	for i := 0; i < board.Len(); i++ {
		style := cellStyle
		switch {
		case i == cursor && erasing:
			style = eraserCellStyle
		case i == cursor:
			style = cursorCellStyle
		case s.Selected(i):
			style = selectedCellStyle
		case board.Empty(i):
			style = emptyCellStyle
		}

		text := "."
		if !board.Empty(i) {
			text = fmt.Sprintf("%d", board.At(i))
		}
		b.WriteString(style.Render(text))

		if board.Col(i) == board.Cols()-1 && i != board.Len()-1 {
			b.WriteString("\n")
		}
	}

	return boardStyle.Render(b.String())
}

// renderHUD draws the score line, tool quotas and elapsed time.
func renderHUD(s *engine.Session, elapsed time.Duration) string {
	rules := s.Rules()
	q := s.Quotas()

	// Counting stops at HintCap, so a capped count means "more than
	// HintCap-1" rather than an exact number.
	moves := s.AvailableMoves()
	movesLabel := fmt.Sprintf("%d", moves)
	if moves >= rules.HintCap {
		movesLabel = fmt.Sprintf("%d+", rules.HintCap-1)
	}

	lines := []string{
		fmt.Sprintf("Score %d/%d   Moves %d   Pairs %s", s.Score(), rules.TargetScore, s.MoveCount(), movesLabel),
		fmt.Sprintf("Add [a] %d   Shuffle [s] %d   Eraser [e] %d   Undo [u]", q.AddNumbers, q.Shuffle, q.Eraser),
		fmt.Sprintf("Time %s", formatElapsed(elapsed)),
	}

	return hudStyle.Render(strings.Join(lines, "\n"))
}

// renderGameOver draws the terminal-state banner.
func renderGameOver(s *engine.Session, elapsed time.Duration) string {
	var b strings.Builder

	if s.Result() == engine.ResultWin {
		b.WriteString(winStyle.Render("YOU WIN"))
	} else {
		b.WriteString(loseStyle.Render("GAME OVER"))
	}
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(s.EndReason()))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("final score %d in %d moves, %s", s.Score(), s.MoveCount(), formatElapsed(elapsed))))
	b.WriteString("\n\n")
	b.WriteString(hudStyle.Render("n: new game  q: quit"))

	return b.String()
}

// formatElapsed formats a duration as MM:SS.
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
