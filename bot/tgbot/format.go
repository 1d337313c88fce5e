package tgbot

import (
	"fmt"
	"strings"

	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/teamdraw"
)

func formatMatch(m domain.Match) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "#%d %s: ", m.ID, m.TournamentName)
	if m.Winner != nil && *m.Winner == domain.SideLocal {
		buf.WriteString("🏆")
	}
	fmt.Fprintf(&buf, "%s %d - %d %s", m.Local.Name, m.Local.Score, m.Visitor.Score, m.Visitor.Name)
	if m.Winner != nil && *m.Winner == domain.SideVisitor {
		buf.WriteString("🏆")
	}
	fmt.Fprintf(&buf, " (%s)", m.State)
	return buf.String()
}

func formatDraw(r teamdraw.Result) string {
	var buf strings.Builder
	for _, team := range r.Teams {
		fmt.Fprintf(&buf, "Equipo %d: %s\n", team.Index, service.TeamName(team))
	}
	if len(r.Excluded) > 0 {
		names := make([]string, 0, len(r.Excluded))
		for _, p := range r.Excluded {
			names = append(names, p.Name)
		}
		if len(r.Teams) > 0 {
			buf.WriteString("Quedan afuera: ")
		} else {
			buf.WriteString("Salen: ")
		}
		buf.WriteString(strings.Join(names, ", "))
		buf.WriteString("\n")
	}
	return buf.String()
}

func formatHistory(matchID int, entries []service.HistoryEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("partido #%d: todavía no hay puntajes anteriores", matchID)
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "Partido #%d, para volver: /volver <n>\n", matchID)
	for _, e := range entries {
		fmt.Fprintf(&buf, "%d) %d - %d  %s\n", e.Index, e.Local, e.Visitor, e.TakenAt.Format("15:04:05"))
	}
	return buf.String()
}
