package usecase

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
)

// ListRevisions returns a paginated listing of revision records,
// optionally filtered by mapping.
func (uc *implUseCase) ListRevisions(ctx context.Context, input mapping.ListRevisionsInput) (mapping.ListRevisionsOutput, error) {
	revisions, total, err := uc.repo.ListRevisions(ctx, repo.ListRevisionsOptions{
		MappingID: input.MappingID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRevisions ListRevisions: %v", err)
		return mapping.ListRevisionsOutput{}, err
	}

	return mapping.ListRevisionsOutput{
		Revisions: revisions,
		Total:     total,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}, nil
}

// RevisionDetail retrieves a revision record by ID. Returns
// ErrRevisionNotFound when absent.
func (uc *implUseCase) RevisionDetail(ctx context.Context, id int64) (mapping.RevisionOutput, error) {
	lsr, err := uc.repo.GetOneRevision(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RevisionDetail GetOneRevision: %v", err)
		return mapping.RevisionOutput{}, err
	}
	if lsr.ID == 0 {
		return mapping.RevisionOutput{}, mapping.ErrRevisionNotFound
	}
	return mapping.RevisionOutput{Revision: lsr}, nil
}

// UpdateRevision applies a partial update to a revision record. An
// empty tag never overwrites a known tag.
func (uc *implUseCase) UpdateRevision(ctx context.Context, input mapping.UpdateRevisionInput) (mapping.RevisionOutput, error) {
	existing, err := uc.repo.GetOneRevision(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRevision GetOneRevision: %v", err)
		return mapping.RevisionOutput{}, err
	}
	if existing.ID == 0 {
		return mapping.RevisionOutput{}, mapping.ErrRevisionNotFound
	}

	merged := existing
	merged.Revision = coalesceStr(input.Revision, existing.Revision)
	merged.Tag = coalesceTag(input.Tag, existing.Tag)

	if errs := mapping.ValidateRevision(merged); errs != nil {
		return mapping.RevisionOutput{}, errs
	}

	lsr, err := uc.repo.UpdateRevision(ctx, repo.UpdateRevisionOptions{
		ID:       merged.ID,
		Revision: merged.Revision,
		Tag:      merged.Tag,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRevision UpdateRevision: %v", err)
		return mapping.RevisionOutput{}, err
	}
	return mapping.RevisionOutput{Revision: lsr}, nil
}
