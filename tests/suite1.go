package tests

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	sel "github.com/goserg/trucoserver/tests/selectors"
	"github.com/stretchr/testify/suite"
)

type TestSuite1 struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	botConfigPath    string
	baseURL          string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to bot configs")
	flag.StringVar(&baseURL, "base-url", "http://127.0.0.1:3000", "address the server listens on")
}

// SetupSuite starts the server binary built by mage.
func (s *TestSuite1) SetupSuite() {
	if serverConfigPath == "" || botConfigPath == "" {
		s.T().Skip("-server-config and -bot-config are not set")
	}
	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	if err := p.Start(context.Background()); err != nil {
		s.T().Fatalf("cant start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v\n%s", err, p.Output())
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/")
			if r != nil {
				r.Body.Close()
				if r.StatusCode == http.StatusOK {
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *TestSuite1) TearDownSuite() {
	if s.process == nil {
		return
	}
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *TestSuite1) TestGuest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	var title, guest string
	err := chromedp.Run(ctx,
		s.CheckStatus(baseURL+"/", http.StatusOK),
		s.CheckStatus(baseURL+"/api/matches", http.StatusOK),
		s.CheckStatus(baseURL+"/api/tournaments", http.StatusOK),
		s.CheckStatus(baseURL+"/api/players", http.StatusOK),
		s.CheckStatus(baseURL+"/api/session", http.StatusUnauthorized),
		s.CheckStatus(baseURL+"/metrics", http.StatusOK),
		chromedp.Navigate(baseURL+"/"),
		chromedp.Text(sel.Title, &title),
		chromedp.Text(sel.Guest, &guest),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if title == "Truco" {
				return nil
			}
			err := errors.New("invalid title: " + title)
			var screenShot []byte
			if errS := chromedp.FullScreenshot(&screenShot, 80).Do(ctx); errS != nil {
				return errors.Join(errS, err)
			}
			if errW := os.WriteFile("invalid_title.png", screenShot, 0o644); errW != nil {
				return errors.Join(errW, err)
			}
			return err
		}),
	)
	s.Require().NoError(err)
	s.Equal("Truco", title)
	s.Equal("Invitado", guest)
}

func (s *TestSuite1) CheckStatus(path string, status int64) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx, chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != status {
				s.T().Errorf("%s should answer %d for guests, got %d", path, status, resp.Status)
			}
			return nil
		}),
	}
}
