package usecase

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
)

// Detail retrieves a single mapping by ID with its revision record
// attached. Returns ErrMappingNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (mapping.MappingOutput, error) {
	m, err := uc.repo.GetOneMapping(ctx, repo.GetOneMappingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneMapping: %v", err)
		return mapping.MappingOutput{}, err
	}
	if m.ID == 0 {
		return mapping.MappingOutput{}, mapping.ErrMappingNotFound
	}

	lsr, err := uc.repo.GetRevisionForMapping(ctx, m.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetRevisionForMapping: %v", err)
		return mapping.MappingOutput{}, err
	}
	if lsr.ID != 0 {
		m.LSR = &lsr
	}

	return mapping.MappingOutput{Mapping: m}, nil
}

// Delete removes a mapping by ID. Its revision record goes with it.
// Returns ErrMappingNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneMapping(ctx, repo.GetOneMappingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneMapping: %v", err)
		return err
	}
	if existing.ID == 0 {
		return mapping.ErrMappingNotFound
	}

	if err := uc.repo.DeleteMapping(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteMapping: %v", err)
		return err
	}
	return nil
}
