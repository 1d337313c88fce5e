package web

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
)

func idParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, badRequest(fmt.Errorf("identificador %q inválido", c.Params("id")))
	}
	return id, nil
}

func (s *Server) handleListPlayers(c *fiber.Ctx) error {
	var (
		players []domain.Player
		err     error
	)
	if q := c.Query("tournamentId"); q != "" {
		id, convErr := strconv.Atoi(q)
		if convErr != nil {
			return badRequest(fmt.Errorf("torneo %q inválido", q))
		}
		players, err = s.svc.Tournaments.Players(c.Context(), id)
	} else {
		players, err = s.svc.Players.ListPlayers(c.Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(players)
}

func (s *Server) handleCreatePlayer(c *fiber.Ctx) error {
	req, err := parseBody[createPlayer](c)
	if err != nil {
		return err
	}
	player, err := s.svc.Players.CreatePlayer(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(player)
}

func (s *Server) handleGetPlayer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(err)
	}
	player, err := s.svc.Players.GetPlayer(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(player)
}

func (s *Server) handleListTournaments(c *fiber.Ctx) error {
	tournaments, err := s.svc.Tournaments.ListTournaments(c.Context())
	if err != nil {
		return err
	}
	resp := make([]tournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		resp = append(resp, newTournamentResponse(t))
	}
	return c.JSON(resp)
}

func (s *Server) handleCreateTournament(c *fiber.Ctx) error {
	req, err := parseBody[createTournament](c)
	if err != nil {
		return err
	}
	createdBy := req.Username
	if user := requestUser(c); !user.Guest() {
		createdBy = user.Name
	}
	t, err := s.svc.Tournaments.CreateTournament(c.Context(), req.Name, createdBy)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newTournamentResponse(t))
}

func (s *Server) handleGetTournament(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	t, err := s.svc.Tournaments.GetTournament(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(newTournamentResponse(t))
}

func (s *Server) handleTournamentPlayers(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	players, err := s.svc.Tournaments.Players(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(players)
}

func (s *Server) handleRegisterPlayers(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := parseBody[registerPlayers](c)
	if err != nil {
		return err
	}
	if err := s.svc.Tournaments.RegisterPlayers(c.Context(), id, req.PlayerIDs); err != nil {
		return err
	}
	players, err := s.svc.Tournaments.Players(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(players)
}

func (s *Server) handleStandings(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	standings, err := s.svc.Tournaments.Standings(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(newStandingResponses(standings))
}

func (s *Server) handleStandingsXLSX(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	t, err := s.svc.Tournaments.GetTournament(c.Context(), id)
	if err != nil {
		return err
	}
	standings, err := s.svc.Tournaments.Standings(c.Context(), id)
	if err != nil {
		return err
	}
	file, err := service.StandingsXLSX(t, standings)
	if err != nil {
		return err
	}
	c.Attachment(fmt.Sprintf("posiciones-%d.xlsx", id))
	return c.Send(file)
}

func (s *Server) handleDraw(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	body, err := parseBody[drawLots](c)
	if err != nil {
		return err
	}
	req, err := body.toService()
	if err != nil {
		return badRequest(err)
	}
	result, err := s.svc.Draws.DrawLots(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(newDrawResult(result))
}

func (s *Server) handleDrawMatches(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	body, err := parseBody[drawMatches](c)
	if err != nil {
		return err
	}
	date, result, err := body.toResult()
	if err != nil {
		return badRequest(err)
	}
	matches, err := s.svc.Draws.CreateMatchesFromDraw(c.Context(), id, date, result)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newMatchResponses(matches))
}
