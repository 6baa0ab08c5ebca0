package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

const mappingColumns = `
	m.id, m.repourl, m.branch, m.package, m.project, m.username, m.obs_id, m.build, m.created_at, m.updated_at,
	o.id, o.namespace, o.apiurl, o.weburl`

const mappingFrom = `
	FROM webhook_mappings m
	JOIN build_services o ON o.id = m.obs_id`

func scanMapping(row interface{ Scan(...any) error }) (model.WebHookMapping, error) {
	var m model.WebHookMapping
	err := row.Scan(
		&m.ID, &m.RepoURL, &m.Branch, &m.Package, &m.Project, &m.User, &m.OBSID, &m.Build, &m.CreatedAt, &m.UpdatedAt,
		&m.OBS.ID, &m.OBS.Namespace, &m.OBS.APIURL, &m.OBS.WebURL,
	)
	return m, err
}

// CreateMapping inserts a new mapping row and returns the created entity
// with its build service populated.
func (r *implRepository) CreateMapping(ctx context.Context, opt repository.CreateMappingOptions) (model.WebHookMapping, error) {
	const query = `
		INSERT INTO webhook_mappings (repourl, branch, package, project, username, obs_id, build, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, repourl, branch, package, project, username, obs_id, build, created_at, updated_at`

	var m model.WebHookMapping
	err := r.q.QueryRowContext(ctx, query,
		opt.RepoURL, opt.Branch, opt.Package, opt.Project, opt.User, opt.OBSID, opt.Build,
	).Scan(
		&m.ID, &m.RepoURL, &m.Branch, &m.Package, &m.Project, &m.User, &m.OBSID, &m.Build, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMapping"), err)
		return model.WebHookMapping{}, repository.ErrFailedToInsert
	}
	return m, nil
}

// GetOneMapping retrieves a single mapping by the provided filters (AND
// condition), with its build service joined. Returns a zero-value mapping
// (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneMapping(ctx context.Context, opt repository.GetOneMappingOptions) (model.WebHookMapping, error) {
	mods, args := r.buildGetOneMappingQuery(opt)
	query := fmt.Sprintf("SELECT %s %s WHERE %s LIMIT 1", mappingColumns, mappingFrom, mods)

	m, err := scanMapping(r.q.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.WebHookMapping{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMapping"), err)
		return model.WebHookMapping{}, repository.ErrFailedToGet
	}
	return m, nil
}

// ListMappings returns a filtered, paginated list of mappings and the
// total count.
func (r *implRepository) ListMappings(ctx context.Context, opt repository.ListMappingsOptions) ([]model.WebHookMapping, int, error) {
	countMods, countArgs := r.buildCountMappingsQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", mappingFrom, countMods)
	var total int
	if err := r.q.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListMappings"), err)
		return nil, 0, repository.ErrFailedToList
	}

	mods, args := r.buildListMappingsQuery(opt)
	query := fmt.Sprintf("SELECT %s %s %s", mappingColumns, mappingFrom, mods)
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMappings"), err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	var mappings []model.WebHookMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, 0, repository.ErrFailedToList
		}
		mappings = append(mappings, m)
	}
	return mappings, total, nil
}

// UpdateMapping updates a mapping by ID with the full merged field set
// and returns the updated entity.
func (r *implRepository) UpdateMapping(ctx context.Context, opt repository.UpdateMappingOptions) (model.WebHookMapping, error) {
	const query = `
		UPDATE webhook_mappings
		SET repourl = $1, branch = $2, package = $3, project = $4, username = $5, obs_id = $6, build = $7, updated_at = $8
		WHERE id = $9
		RETURNING id, repourl, branch, package, project, username, obs_id, build, created_at, updated_at`

	var m model.WebHookMapping
	err := r.q.QueryRowContext(ctx, query,
		opt.RepoURL, opt.Branch, opt.Package, opt.Project, opt.User, opt.OBSID, opt.Build, time.Now(), opt.ID,
	).Scan(
		&m.ID, &m.RepoURL, &m.Branch, &m.Package, &m.Project, &m.User, &m.OBSID, &m.Build, &m.CreatedAt, &m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.WebHookMapping{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateMapping"), err)
		return model.WebHookMapping{}, repository.ErrFailedToUpdate
	}
	return m, nil
}

// DeleteMapping removes a mapping by ID. Its revision record goes with it
// (ON DELETE CASCADE).
func (r *implRepository) DeleteMapping(ctx context.Context, id int64) error {
	const query = `DELETE FROM webhook_mappings WHERE id = $1`
	if _, err := r.q.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMapping"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
