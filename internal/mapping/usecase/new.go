package usecase

import (
	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/boss"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// implUseCase is the private implementation of mapping.UseCase.
type implUseCase struct {
	repo     repository.Repository
	launcher boss.Launcher
	l        log.Logger
}

// New creates a new mapping UseCase implementation.
func New(repo repository.Repository, launcher boss.Launcher, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		launcher: launcher,
		l:        l,
	}
}
