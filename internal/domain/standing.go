package domain

type Glicko2 struct {
	Rating    float64 `json:"rating"`
	Deviation float64 `json:"deviation"`
}

type Standing struct {
	Player  Player  `json:"player"`
	Played  int     `json:"totalMatches"`
	Won     int     `json:"matchesWon"`
	Lost    int     `json:"matchesLost"`
	WinRate string  `json:"winRate"`
	Elo     int     `json:"elo"`
	Glicko  Glicko2 `json:"glicko2"`
	Rank    int     `json:"position"`
}
