package usecase

import (
	"voice-ordering/internal/menu/repository"
	"voice-ordering/pkg/log"
)

// implUseCase is the private implementation of menu.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new menu UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
