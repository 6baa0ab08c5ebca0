package usecase

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// Create registers a new webhook mapping owned by the caller. When the
// input carries a revision, the mapping's revision record is created in
// the same transaction; the pair is validated together and neither side
// is persisted if either fails.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input mapping.CreateMappingInput) (mapping.CreateMappingOutput, error) {
	if input.Branch == "" {
		input.Branch = "master"
	}

	svc, err := uc.repo.GetOneBuildService(ctx, repo.GetOneBuildServiceOptions{ID: input.OBSID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneBuildService: %v", err)
		return mapping.CreateMappingOutput{}, err
	}

	candidate := model.WebHookMapping{
		RepoURL: input.RepoURL,
		Branch:  input.Branch,
		Package: input.Package,
		Project: input.Project,
		User:    sc.Username,
		OBSID:   svc.ID,
		Build:   input.Build,
	}

	errs := mapping.ValidateMapping(candidate)
	if errs == nil {
		errs = mapping.ValidationErrors{}
	}
	if input.OBSID != 0 && svc.ID == 0 {
		errs["obs"] = "build service does not exist"
	}
	if input.Revision != "" || input.Tag != "" {
		// MappingID is filled after insert; validate the rest here.
		if input.Revision == "" {
			errs["revision"] = "revision is required when a tag is given"
		}
	}
	if len(errs) > 0 {
		return mapping.CreateMappingOutput{}, errs
	}

	var created model.WebHookMapping
	err = uc.repo.InTransaction(ctx, func(ctx context.Context, r repo.Repository) error {
		m, err := r.CreateMapping(ctx, repo.CreateMappingOptions{
			RepoURL: candidate.RepoURL,
			Branch:  candidate.Branch,
			Package: candidate.Package,
			Project: candidate.Project,
			User:    candidate.User,
			OBSID:   candidate.OBSID,
			Build:   candidate.Build,
		})
		if err != nil {
			return err
		}

		if input.Revision != "" {
			lsr, err := r.CreateRevision(ctx, repo.CreateRevisionOptions{
				MappingID: m.ID,
				Revision:  input.Revision,
				Tag:       input.Tag,
			})
			if err != nil {
				return err
			}
			m.LSR = &lsr
		}

		created = m
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InTransaction: %v", err)
		return mapping.CreateMappingOutput{}, err
	}

	created.OBS = svc
	return mapping.CreateMappingOutput{Mapping: created}, nil
}
