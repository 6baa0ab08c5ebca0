package usecase

import (
	"context"
	"fmt"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// Trigger queues a build for the mapping. A mapping with build disabled
// or a queue failure is reported in the output message, not as an error:
// the caller asked a valid question and gets a descriptive answer.
func (uc *implUseCase) Trigger(ctx context.Context, id int64) (mapping.TriggerOutput, error) {
	m, err := uc.repo.GetOneMapping(ctx, repo.GetOneMappingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Trigger GetOneMapping: %v", err)
		return mapping.TriggerOutput{}, err
	}
	if m.ID == 0 {
		return mapping.TriggerOutput{}, mapping.ErrMappingNotFound
	}
	return uc.triggerBuild(ctx, m)
}

// triggerBuild builds the launch payload for a mapping and hands it to
// the launcher. The mapping's last seen revision, when present, rides
// along so the build picks up the reported commit.
func (uc *implUseCase) triggerBuild(ctx context.Context, m model.WebHookMapping) (mapping.TriggerOutput, error) {
	tgt := target(m.OBS.Namespace, m.Project, m.Package)

	if !m.Build {
		return mapping.TriggerOutput{
			Message: fmt.Sprintf("build not enabled for %s", tgt),
		}, nil
	}

	payload := map[string]any{
		"obs":     m.OBS.Namespace,
		"project": m.Project,
		"package": m.Package,
		"repourl": m.RepoURL,
		"branch":  m.Branch,
	}

	lsr, err := uc.repo.GetRevisionForMapping(ctx, m.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.triggerBuild GetRevisionForMapping: %v", err)
		return mapping.TriggerOutput{}, err
	}
	if lsr.ID != 0 {
		payload["revision"] = lsr.Revision
		if lsr.Tag != "" {
			payload["tag"] = lsr.Tag
		}
	}

	if err := uc.launcher.Launch(ctx, payload); err != nil {
		uc.l.Errorf(ctx, "uc.triggerBuild Launch: %v", err)
		return mapping.TriggerOutput{
			Message: fmt.Sprintf("failed to queue build for %s", tgt),
		}, nil
	}

	return mapping.TriggerOutput{
		Message: fmt.Sprintf("build queued for %s", tgt),
	}, nil
}
