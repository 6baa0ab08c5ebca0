package postgre

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// ListOfficialProjects returns projects flagged both official and
// allowed — the publicly visible set for the landing listing.
func (r *implRepository) ListOfficialProjects(ctx context.Context) ([]model.Project, error) {
	const query = `SELECT id, name, official, allowed FROM projects WHERE official AND allowed ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOfficialProjects"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Official, &p.Allowed); err != nil {
			return nil, repository.ErrFailedToList
		}
		projects = append(projects, p)
	}
	return projects, nil
}
