package webpath

const (
	Home    = "/"
	Signout = "/signout"
	Metrics = "/metrics"

	Api = "/api"
	ApiLogin  = Api + "/auth/login"
	ApiSignup = Api + "/auth/signup"

	ApiPlayers = Api + "/players"
	ApiPlayer  = ApiPlayers + "/:id"

	ApiTournaments       = Api + "/tournaments"
	ApiTournament        = ApiTournaments + "/:id"
	ApiTournamentPlayers = ApiTournament + "/players"
	ApiStandings         = ApiTournament + "/standings"
	ApiStandingsXLSX     = ApiTournament + "/standings.xlsx"
	ApiDraw              = ApiTournament + "/draw"
	ApiDrawMatches       = ApiDraw + "/matches"

	ApiMatches      = Api + "/matches"
	ApiMatch        = ApiMatches + "/:id"
	ApiOpenMatch    = ApiMatch + "/open"
	ApiScore        = ApiMatch + "/score"
	ApiFaltaEnvido  = ApiMatch + "/falta-envido"
	ApiCancel       = ApiMatch + "/cancel"
	ApiHistory      = ApiMatch + "/history"
	ApiHistoryChart = ApiMatch + "/history.png"
	ApiRestore      = ApiMatch + "/restore"

	ApiSession = Api + "/session"
)

// Path lists the links the dashboard templates use.
func Path() map[string]string {
	return map[string]string{
		"Home":        Home,
		"SignOut":     Signout,
		"Login":       ApiLogin,
		"Players":     ApiPlayers,
		"Tournaments": ApiTournaments,
		"Matches":     ApiMatches,
		"Metrics":     Metrics,
	}
}
