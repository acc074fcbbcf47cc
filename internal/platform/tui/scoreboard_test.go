package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeSource struct {
	scores []storage.ScoreEntry
	err    error
}

func (f fakeSource) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func (f fakeSource) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	stats := &storage.GameStats{GameID: gameID, Runs: len(f.scores)}
	var total int64
	for _, s := range f.scores {
		total += int64(s.Score)
		stats.HighScore = max(stats.HighScore, s.Score)
	}
	stats.TotalScore = total
	if len(f.scores) > 0 {
		stats.AvgScore = float64(total) / float64(len(f.scores))
	}
	return stats, nil
}

func TestScoreboardView(t *testing.T) {
	when := time.Date(2024, 3, 9, 18, 5, 0, 0, time.UTC)
	src := fakeSource{scores: []storage.ScoreEntry{
		{ID: 2, GameID: "flappy", Score: 12, CreatedAt: when},
		{ID: 1, GameID: "flappy", Score: 4, CreatedAt: when},
	}}

	view := NewScoreboardModel(src, 80, 30).View()
	for _, want := range []string{"HIGH SCORES - ~Flappy~", "Runs: 2", "Best: 12", "Average: 8.0", "#1", "Mar 09 18:05"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	view := NewScoreboardModel(fakeSource{}, 80, 30).View()
	if !strings.Contains(view, "No runs recorded") {
		t.Errorf("expected empty stats line:\n%s", view)
	}
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("expected empty table message:\n%s", view)
	}
}

func TestScoreboardNilSource(t *testing.T) {
	view := NewScoreboardModel(nil, 80, 30).View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("nil source should render as empty:\n%s", view)
	}
}

func TestScoreboardLoadError(t *testing.T) {
	view := NewScoreboardModel(fakeSource{err: errors.New("locked")}, 80, 30).View()
	if !strings.Contains(view, "Could not read scores: locked") {
		t.Errorf("expected error line:\n%s", view)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeSource{}, 80, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !isQuit(cmd) {
		t.Error("q should quit the scoreboard")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{{Score: 9}, {Score: 3}})
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "9" || rows[1][0] != "#2" {
		t.Errorf("rows = %v", rows)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
