package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
)

func (s *Server) handleListMatches(c *fiber.Ctx) error {
	page, err := s.svc.Matches.ListMatches(c.Context(), domain.MatchFilter{
		State:        domain.MatchState(c.QueryInt("stateId")),
		TournamentID: c.QueryInt("tournamentId"),
		Page:         c.QueryInt("page"),
		Size:         c.QueryInt("size"),
		Ascending:    strings.EqualFold(c.Query("sortDirection"), "ASC"),
	})
	if err != nil {
		return err
	}
	return c.JSON(newMatchPage(page))
}

func (s *Server) handleCreateMatch(c *fiber.Ctx) error {
	body, err := parseBody[createMatch](c)
	if err != nil {
		return err
	}
	req, err := body.toService()
	if err != nil {
		return badRequest(err)
	}
	m, err := s.svc.Matches.CreateMatch(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newMatchResponse(m))
}

func (s *Server) handleGetMatch(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	m, err := s.svc.Matches.GetMatch(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(newMatchResponse(m))
}

func (s *Server) handleSetScore(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := parseBody[setScore](c)
	if err != nil {
		return err
	}
	m, err := s.svc.Scoring.SetScore(c.Context(), sessionOwner(c), id, *req.Local, *req.Visitor)
	if err != nil {
		return err
	}
	return c.JSON(newMatchResponse(m))
}

func (s *Server) handleOpenMatch(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	m, err := s.svc.Scoring.OpenMatch(c.Context(), sessionOwner(c), id)
	if err != nil {
		return err
	}
	return c.JSON(newMatchResponse(m))
}

func (s *Server) handleScore(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := parseBody[addScore](c)
	if err != nil {
		return err
	}
	m, err := s.svc.Scoring.UpdateScore(c.Context(), sessionOwner(c), id, req.side(), req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(newMatchResponse(m))
}

func (s *Server) handleFaltaEnvido(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := parseBody[faltaEnvido](c)
	if err != nil {
		return err
	}
	m, err := s.svc.Scoring.FaltaEnvido(c.Context(), sessionOwner(c), id, sideOf(req.Local))
	if err != nil {
		return err
	}
	return c.JSON(newMatchResponse(m))
}

func (s *Server) handleCancel(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	m, err := s.svc.Matches.CancelMatch(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(newMatchResponse(m))
}

func (s *Server) handleHistory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	id, entries, err := s.svc.Scoring.History(sessionOwner(c), id)
	if err != nil {
		return err
	}
	return c.JSON(historyResponse{MatchID: id, Entries: entries})
}

func (s *Server) handleHistoryChart(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	_, snapshots, err := s.svc.Scoring.Snapshots(sessionOwner(c), id)
	if err != nil {
		return err
	}
	m, err := s.svc.Matches.GetMatch(c.Context(), id)
	if err != nil {
		return err
	}
	chart, err := service.ScoreHistoryChart(m, snapshots)
	if err != nil {
		return err
	}
	c.Type("png")
	return c.Send(chart)
}

func (s *Server) handleRestore(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := parseBody[restore](c)
	if err != nil {
		return err
	}
	m, err := s.svc.Scoring.Restore(c.Context(), sessionOwner(c), id, *req.Index)
	if err != nil {
		return err
	}
	return c.JSON(newMatchResponse(m))
}

func (s *Server) handleCloseSession(c *fiber.Ctx) error {
	s.svc.Scoring.CloseSession(sessionOwner(c))
	return c.SendStatus(fiber.StatusNoContent)
}
