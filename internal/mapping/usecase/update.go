package usecase

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// Update applies a partial update to a mapping. Only fields the caller
// supplied are changed; the rest keep their current values. A revision
// field (top-level or inside the lsr sub-object) also updates the
// mapping's revision record, creating it on first report. The merged
// mapping and revision are validated as a pair and persisted in one
// transaction.
func (uc *implUseCase) Update(ctx context.Context, input mapping.UpdateMappingInput) (mapping.UpdateMappingOutput, error) {
	existing, err := uc.repo.GetOneMapping(ctx, repo.GetOneMappingOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneMapping: %v", err)
		return mapping.UpdateMappingOutput{}, err
	}
	if existing.ID == 0 {
		return mapping.UpdateMappingOutput{}, mapping.ErrMappingNotFound
	}

	merged := model.WebHookMapping{
		ID:      existing.ID,
		RepoURL: coalesceStr(input.RepoURL, existing.RepoURL),
		Branch:  coalesceStr(input.Branch, existing.Branch),
		Package: coalesceStr(input.Package, existing.Package),
		Project: coalesceStr(input.Project, existing.Project),
		User:    coalesceStr(input.User, existing.User),
		OBSID:   coalesceInt64(input.OBSID, existing.OBSID),
		Build:   coalesceBool(input.Build, existing.Build),
	}

	svc := existing.OBS
	if input.OBSID != nil && *input.OBSID != existing.OBSID {
		svc, err = uc.repo.GetOneBuildService(ctx, repo.GetOneBuildServiceOptions{ID: *input.OBSID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneBuildService: %v", err)
			return mapping.UpdateMappingOutput{}, err
		}
	}

	errs := mapping.ValidateMapping(merged)
	if errs == nil {
		errs = mapping.ValidationErrors{}
	}
	if merged.OBSID != 0 && svc.ID == 0 {
		errs["obs"] = "build service does not exist"
	}

	// The lsr sub-object or a top-level revision makes the revision
	// record part of this update. A tag alone does not; it only overlays
	// when the update is otherwise implied.
	revisionTouched := input.LSR != nil || input.Revision != nil

	var current model.LastSeenRevision
	var mergedLSR model.LastSeenRevision
	if revisionTouched {
		current, err = uc.repo.GetRevisionForMapping(ctx, existing.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetRevisionForMapping: %v", err)
			return mapping.UpdateMappingOutput{}, err
		}

		mergedLSR = current
		mergedLSR.MappingID = existing.ID
		if input.LSR != nil {
			mergedLSR.Revision = coalesceStr(input.LSR.Revision, mergedLSR.Revision)
			mergedLSR.Tag = coalesceTag(input.LSR.Tag, mergedLSR.Tag)
		}
		// Top-level revision wins over the sub-object: it carries the
		// primary webhook signal.
		if input.Revision != nil {
			mergedLSR.Revision = *input.Revision
		}
		mergedLSR.Tag = coalesceTag(input.Tag, mergedLSR.Tag)

		// Only the top-level field may create a missing record; a
		// sub-object alone patches nothing.
		if current.ID == 0 && input.Revision == nil {
			errs["revision"] = "revision is required"
		}
		for f, msg := range mapping.ValidateRevision(mergedLSR) {
			errs[f] = msg
		}
	}

	if len(errs) > 0 {
		return mapping.UpdateMappingOutput{}, errs
	}

	var updated model.WebHookMapping
	err = uc.repo.InTransaction(ctx, func(ctx context.Context, r repo.Repository) error {
		m, err := r.UpdateMapping(ctx, repo.UpdateMappingOptions{
			ID:      merged.ID,
			RepoURL: merged.RepoURL,
			Branch:  merged.Branch,
			Package: merged.Package,
			Project: merged.Project,
			User:    merged.User,
			OBSID:   merged.OBSID,
			Build:   merged.Build,
		})
		if err != nil {
			return err
		}

		if revisionTouched {
			var lsr model.LastSeenRevision
			if current.ID == 0 {
				lsr, err = r.CreateRevision(ctx, repo.CreateRevisionOptions{
					MappingID: mergedLSR.MappingID,
					Revision:  mergedLSR.Revision,
					Tag:       mergedLSR.Tag,
				})
			} else {
				lsr, err = r.UpdateRevision(ctx, repo.UpdateRevisionOptions{
					ID:       current.ID,
					Revision: mergedLSR.Revision,
					Tag:      mergedLSR.Tag,
				})
			}
			if err != nil {
				return err
			}
			m.LSR = &lsr
		}

		updated = m
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update InTransaction: %v", err)
		return mapping.UpdateMappingOutput{}, err
	}

	updated.OBS = svc
	if updated.LSR == nil {
		if lsr, err := uc.repo.GetRevisionForMapping(ctx, updated.ID); err == nil && lsr.ID != 0 {
			updated.LSR = &lsr
		}
	}
	return mapping.UpdateMappingOutput{Mapping: updated}, nil
}
