package usecase

import (
	"context"
	"fmt"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// FindByTarget looks up the mapping for a (build service, project,
// package) triple. A missing mapping is reported via Found=false, not an
// error; external tooling probes this path routinely.
func (uc *implUseCase) FindByTarget(ctx context.Context, key mapping.TargetKey) (mapping.FindOutput, error) {
	m, err := uc.getByTarget(ctx, key)
	if err != nil {
		return mapping.FindOutput{}, err
	}
	if m.ID == 0 {
		return mapping.FindOutput{Found: false}, nil
	}
	return mapping.FindOutput{Mapping: m, Found: true}, nil
}

// UpdateOrCreateByTarget triggers the build when a mapping already
// exists for the target triple, or registers a new one owned by the
// caller. The path triple always wins over any body fields: the caller
// addressed a specific target and gets exactly that target.
func (uc *implUseCase) UpdateOrCreateByTarget(ctx context.Context, sc model.Scope, key mapping.TargetKey, input mapping.CreateMappingInput) (mapping.UpdateOrCreateOutput, error) {
	m, err := uc.getByTarget(ctx, key)
	if err != nil {
		return mapping.UpdateOrCreateOutput{}, err
	}

	if m.ID != 0 {
		out, err := uc.triggerBuild(ctx, m)
		if err != nil {
			return mapping.UpdateOrCreateOutput{}, err
		}
		return mapping.UpdateOrCreateOutput{
			Created: false,
			Mapping: m,
			Message: out.Message,
		}, nil
	}

	svc, err := uc.repo.GetOneBuildService(ctx, repo.GetOneBuildServiceOptions{Namespace: key.OBSName})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateOrCreateByTarget GetOneBuildService: %v", err)
		return mapping.UpdateOrCreateOutput{}, err
	}
	if svc.ID == 0 {
		return mapping.UpdateOrCreateOutput{}, mapping.ValidationErrors{
			"obs": "build service does not exist",
		}
	}

	input.Project = key.Project
	input.Package = key.Package
	input.OBSID = svc.ID

	created, err := uc.Create(ctx, sc, input)
	if err != nil {
		return mapping.UpdateOrCreateOutput{}, err
	}

	return mapping.UpdateOrCreateOutput{
		Created: true,
		Mapping: created.Mapping,
		Message: fmt.Sprintf("webhook mapping created for %s", target(key.OBSName, key.Project, key.Package)),
	}, nil
}

// TriggerByTarget queues a build for the mapping addressed by the
// target triple. Unlike FindByTarget, a missing mapping is an error
// here: there is nothing to trigger.
func (uc *implUseCase) TriggerByTarget(ctx context.Context, key mapping.TargetKey) (mapping.TriggerOutput, error) {
	m, err := uc.getByTarget(ctx, key)
	if err != nil {
		return mapping.TriggerOutput{}, err
	}
	if m.ID == 0 {
		return mapping.TriggerOutput{}, mapping.ErrMappingNotFound
	}
	return uc.triggerBuild(ctx, m)
}

func (uc *implUseCase) getByTarget(ctx context.Context, key mapping.TargetKey) (model.WebHookMapping, error) {
	m, err := uc.repo.GetOneMapping(ctx, repo.GetOneMappingOptions{
		OBSNamespace: key.OBSName,
		Project:      key.Project,
		Package:      key.Package,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getByTarget GetOneMapping: %v", err)
		return model.WebHookMapping{}, err
	}
	if m.ID != 0 {
		if lsr, err := uc.repo.GetRevisionForMapping(ctx, m.ID); err == nil && lsr.ID != 0 {
			m.LSR = &lsr
		}
	}
	return m, nil
}
