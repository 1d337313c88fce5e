package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("invalid request")
	ErrMatchCanceled = errors.New("el partido está cancelado")
	ErrMatchFinished = errors.New("el partido ya terminó")
	ErrNoOpenMatch   = errors.New("no hay partido abierto")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Services bundles what the transports need.
type Services struct {
	Players     *PlayerService
	Tournaments *TournamentService
	Matches     *MatchService
	Scoring     *Scoring
	Draws       *DrawService
}
