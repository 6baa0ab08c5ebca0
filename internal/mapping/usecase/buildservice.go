package usecase

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
)

// ListBuildServices returns the configured build services.
func (uc *implUseCase) ListBuildServices(ctx context.Context) (mapping.ListBuildServicesOutput, error) {
	services, err := uc.repo.ListBuildServices(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListBuildServices ListBuildServices: %v", err)
		return mapping.ListBuildServicesOutput{}, err
	}
	return mapping.ListBuildServicesOutput{Services: services}, nil
}

// BuildServiceDetail retrieves a build service by ID. Returns
// ErrBuildServiceNotFound when absent.
func (uc *implUseCase) BuildServiceDetail(ctx context.Context, id int64) (mapping.BuildServiceOutput, error) {
	svc, err := uc.repo.GetOneBuildService(ctx, repo.GetOneBuildServiceOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BuildServiceDetail GetOneBuildService: %v", err)
		return mapping.BuildServiceOutput{}, err
	}
	if svc.ID == 0 {
		return mapping.BuildServiceOutput{}, mapping.ErrBuildServiceNotFound
	}
	return mapping.BuildServiceOutput{Service: svc}, nil
}
