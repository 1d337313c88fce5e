package sel

const (
	Title = "#title"
	Nav   = "#nav"

	Guest    = "#guest"
	Username = "#username"
	SignOut  = "#signout"

	Tournaments = "#tournaments"
	StandingRow = Tournaments + " tr.standing"
	Matches     = "#matches"
	MatchRow    = Matches + " tr.match"
)
