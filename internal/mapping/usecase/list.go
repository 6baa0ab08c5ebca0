package usecase

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	repo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// List returns a filtered, paginated listing of mappings.
func (uc *implUseCase) List(ctx context.Context, input mapping.ListMappingsInput) (mapping.ListMappingsOutput, error) {
	mappings, total, err := uc.repo.ListMappings(ctx, repo.ListMappingsOptions{
		ID:              input.ID,
		Package:         input.Package,
		PackageContains: input.PackageContains,
		Project:         input.Project,
		ProjectContains: input.ProjectContains,
		RepoURL:         input.RepoURL,
		RepoURLContains: input.RepoURLContains,
		Branch:          input.Branch,
		User:            input.User,
		Build:           input.Build,
		Limit:           input.Limit,
		Offset:          input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMappings: %v", err)
		return mapping.ListMappingsOutput{}, err
	}

	return mapping.ListMappingsOutput{
		Mappings: mappings,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}

// GroupedList builds the landing listing: mappings grouped by project,
// restricted to what the viewer may see. Official projects (official AND
// allowed) are visible to everyone; a signed-in user additionally sees
// every mapping they own. Mappings without a package are placeholders
// and stay out of the listing.
func (uc *implUseCase) GroupedList(ctx context.Context, sc model.Scope) (mapping.GroupedListOutput, error) {
	projects, err := uc.repo.ListOfficialProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GroupedList ListOfficialProjects: %v", err)
		return mapping.GroupedListOutput{}, err
	}

	official := make(map[string]bool, len(projects))
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		official[p.Name] = true
		names = append(names, p.Name)
	}

	out := mapping.GroupedListOutput{Groups: map[string]mapping.MappingGroup{}}
	if len(names) == 0 && !sc.Authenticated() {
		return out, nil
	}

	mappings, _, err := uc.repo.ListMappings(ctx, repo.ListMappingsOptions{
		VisibleProjects:     names,
		VisibleToUser:       sc.Username,
		ExcludeEmptyPackage: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GroupedList ListMappings: %v", err)
		return mapping.GroupedListOutput{}, err
	}

	for _, m := range mappings {
		g, ok := out.Groups[m.Project]
		if !ok {
			g = mapping.MappingGroup{
				Official:  official[m.Project],
				Personal:  true,
				OBSWebURL: m.OBS.WebURL,
			}
		}
		if m.User != sc.Username {
			g.Personal = false
		}
		g.Packages = append(g.Packages, m)
		out.Groups[m.Project] = g
	}

	return out, nil
}
