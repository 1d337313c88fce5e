package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html"
	embedded "github.com/goserg/trucoserver"
	authservice "github.com/goserg/trucoserver/auth/service"
	"github.com/goserg/trucoserver/auth/users"
	"github.com/goserg/trucoserver/internal/config"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/metrics"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/web/webpath"
	"github.com/sirupsen/logrus"
)

type Server struct {
	auth    *authservice.Service
	svc     service.Services
	metrics *metrics.Metrics
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(
	svc service.Services,
	authService *authservice.Service,
	m *metrics.Metrics,
	cfg config.Server,
	l *logrus.Logger,
) (*Server, error) {
	server := Server{
		svc:     svc,
		auth:    authService,
		metrics: m,
		cfg:     cfg,
		log:     l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Use(recover.New())
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies(authservice.CookieName)
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.Path())
		if err != nil {
			return err
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Home, server.handleMain)
	app.Get(webpath.Signout, server.handleSignOut)
	app.Get(webpath.Metrics, adaptor.HTTPHandler(m.Handler()))

	app.Post(webpath.ApiLogin, server.handleLogin)
	app.Post(webpath.ApiSignup, server.handleSignup)

	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiPlayer, server.handleGetPlayer)

	app.Get(webpath.ApiTournaments, server.handleListTournaments)
	app.Post(webpath.ApiTournaments, server.handleCreateTournament)
	app.Get(webpath.ApiTournament, server.handleGetTournament)
	app.Get(webpath.ApiTournamentPlayers, server.handleTournamentPlayers)
	app.Post(webpath.ApiTournamentPlayers, server.handleRegisterPlayers)
	app.Get(webpath.ApiStandings, server.handleStandings)
	app.Get(webpath.ApiStandingsXLSX, server.handleStandingsXLSX)
	app.Post(webpath.ApiDraw, server.handleDraw)
	app.Post(webpath.ApiDrawMatches, server.handleDrawMatches)

	app.Get(webpath.ApiMatches, server.handleListMatches)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)
	app.Get(webpath.ApiHistoryChart, server.handleHistoryChart)
	app.Get(webpath.ApiMatch, server.handleGetMatch)
	app.Put(webpath.ApiMatch, server.handleSetScore)
	app.Post(webpath.ApiOpenMatch, server.handleOpenMatch)
	app.Post(webpath.ApiScore, server.handleScore)
	app.Post(webpath.ApiFaltaEnvido, server.handleFaltaEnvido)
	app.Post(webpath.ApiCancel, server.handleCancel)
	app.Get(webpath.ApiHistory, server.handleHistory)
	app.Post(webpath.ApiRestore, server.handleRestore)
	app.Delete(webpath.ApiSession, server.handleCloseSession)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if s.cfg.TLS.Enabled() {
		s.log.WithField("port", s.cfg.Port).Info("listening with tls")
		return s.app.ListenTLS(addr, s.cfg.TLS.Cert, s.cfg.TLS.Key)
	}
	s.log.WithField("port", s.cfg.Port).Info("listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

const userKey = "user"

func requestUser(c *fiber.Ctx) users.User {
	user, _ := c.Context().UserValue(userKey).(users.User)
	return user
}

// sessionOwner keys the scoring session of the requesting web user.
func sessionOwner(c *fiber.Ctx) string {
	user := requestUser(c)
	if user.Guest() {
		return "web:guest"
	}
	return "web:" + user.ID.String()
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		return c.Status(code).JSON(errorResponse{Message: http.StatusText(code)})
	}
	return c.Status(code).JSON(newErrorResponse(err))
}

type dashboardTournament struct {
	Tournament domain.Tournament
	Finished   int
	Standings  []domain.Standing
}

const dashboardTop = 5

func (s *Server) handleMain(c *fiber.Ctx) error {
	page := newData("Truco")
	user, err := s.auth.User(c.Context(), c.Cookies(authservice.CookieName))
	if err == nil {
		page = page.WithUser(user)
	}
	tournaments, err := s.dashboard(c)
	if err != nil {
		s.log.WithError(err).Error("dashboard")
		return c.Status(fiber.StatusInternalServerError).Render("index", page.WithErrors(err), "layouts/main")
	}
	matches, err := s.svc.Matches.ListMatches(c.Context(), domain.MatchFilter{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("index", page.WithErrors(err), "layouts/main")
	}
	return c.Render("index", page.
		With("Tournaments", tournaments).
		With("Matches", matches.Content), "layouts/main")
}

func (s *Server) dashboard(c *fiber.Ctx) ([]dashboardTournament, error) {
	tournaments, err := s.svc.Tournaments.ListTournaments(c.Context())
	if err != nil {
		return nil, err
	}
	out := make([]dashboardTournament, 0, len(tournaments))
	for _, t := range tournaments {
		standings, err := s.svc.Tournaments.Standings(c.Context(), t.ID)
		if err != nil {
			return nil, err
		}
		finished := 0
		for _, m := range t.Matches {
			if m.State == domain.StateFinished {
				finished++
			}
		}
		out = append(out, dashboardTournament{
			Tournament: t,
			Finished:   finished,
			Standings:  standings[:min(dashboardTop, len(standings))],
		})
	}
	return out, nil
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	req, err := parseBody[signInRequest](c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(loginResponse{Message: err.Error()})
	}
	user, err := s.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrBadCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(loginResponse{Message: err.Error()})
		}
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	c.Cookie(cookie)
	s.log.WithField("user", user.Name).Info("logged in")
	return c.JSON(loginResponse{Success: true, Username: user.Name})
}

func (s *Server) handleSignup(c *fiber.Ctx) error {
	req, err := parseBody[signUpRequest](c)
	if err != nil {
		return err
	}
	if err := s.auth.SignUp(c.Context(), req.Username, req.Password); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (s *Server) handleSignOut(c *fiber.Ctx) error {
	c.ClearCookie(authservice.CookieName)
	return c.Redirect(webpath.Home)
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
