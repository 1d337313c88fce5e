package sqlite

import (
	"github.com/google/uuid"
	"github.com/goserg/trucoserver/gen/model"
	"github.com/goserg/trucoserver/internal/domain"
)

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, err
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		RegisteredAt: player.CreatedAt,
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:        player.ID.String(),
		Name:      player.Name,
		CreatedAt: player.RegisteredAt,
	}
}

func convertTournamentToDomain(t model.Tournaments) domain.Tournament {
	return domain.Tournament{
		ID:        int(t.ID),
		Name:      t.Name,
		CreatedBy: t.CreatedBy,
		CreatedAt: t.CreatedAt,
	}
}

func convertTournamentsToDomain(tournaments []model.Tournaments) []domain.Tournament {
	converted := make([]domain.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		converted = append(converted, convertTournamentToDomain(t))
	}
	return converted
}

func convertTournamentFromDomain(t domain.Tournament) model.Tournaments {
	return model.Tournaments{
		ID:        int32(t.ID),
		Name:      t.Name,
		CreatedBy: t.CreatedBy,
		CreatedAt: t.CreatedAt,
	}
}

func convertMatchFromDomain(m domain.Match) model.Matches {
	var winner *string
	if m.Winner != nil {
		w := string(*m.Winner)
		winner = &w
	}
	return model.Matches{
		ID:              int32(m.ID),
		TournamentID:    int32(m.TournamentID),
		PlayedAt:        m.Date,
		LocalTeamName:   m.Local.Name,
		VisitorTeamName: m.Visitor.Name,
		ScoreLocal:      int32(m.Local.Score),
		ScoreVisitor:    int32(m.Visitor.Score),
		StateID:         int32(m.State),
		WinnerSide:      winner,
		CreatedAt:       m.CreatedAt,
	}
}

func convertMatchToDomain(m model.Matches) domain.Match {
	var winner *domain.Side
	if m.WinnerSide != nil {
		w := domain.Side(*m.WinnerSide)
		winner = &w
	}
	return domain.Match{
		ID:           int(m.ID),
		TournamentID: int(m.TournamentID),
		Date:         m.PlayedAt,
		Local: domain.TeamSlot{
			Name:    m.LocalTeamName,
			Score:   int(m.ScoreLocal),
			Players: []domain.Player{},
		},
		Visitor: domain.TeamSlot{
			Name:    m.VisitorTeamName,
			Score:   int(m.ScoreVisitor),
			Players: []domain.Player{},
		},
		State:     domain.MatchState(m.StateID),
		Winner:    winner,
		CreatedAt: m.CreatedAt,
	}
}

func assembleMatches(
	matches []model.Matches,
	matchPlayers []model.MatchPlayers,
	players []domain.Player,
	tournaments []domain.Tournament,
) []domain.Match {
	playerMap := make(map[string]domain.Player, len(players))
	for _, p := range players {
		playerMap[p.ID.String()] = p
	}
	tournamentNames := make(map[int]string, len(tournaments))
	for _, t := range tournaments {
		tournamentNames[t.ID] = t.Name
	}
	index := make(map[int32]int, len(matches))
	converted := make([]domain.Match, 0, len(matches))
	for i, m := range matches {
		index[m.ID] = i
		dm := convertMatchToDomain(m)
		dm.TournamentName = tournamentNames[dm.TournamentID]
		converted = append(converted, dm)
	}
	for _, mp := range matchPlayers {
		i, ok := index[mp.MatchID]
		if !ok {
			continue
		}
		p, ok := playerMap[mp.PlayerID]
		if !ok {
			continue
		}
		slot := converted[i].Slot(domain.Side(mp.Side))
		slot.Players = append(slot.Players, p)
	}
	return converted
}
