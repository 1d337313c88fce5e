package domain

import "time"

type Tournament struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	Matches   []Match   `json:"partidos"`
}
