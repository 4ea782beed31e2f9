package http

import (
	"gitagpt/internal/verse"
	"gitagpt/pkg/log"
)

type handler struct {
	l  log.Logger
	uc verse.UseCase
}

// New creates a new HTTP handler for the verse domain.
func New(l log.Logger, uc verse.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
