package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// GetOneBuildService retrieves a build service by id or namespace.
// Returns a zero value (ID == 0) when not found.
func (r *implRepository) GetOneBuildService(ctx context.Context, opt repository.GetOneBuildServiceOptions) (model.BuildService, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Namespace != "" {
		conditions = append(conditions, fmt.Sprintf("namespace = $%d", idx))
		args = append(args, opt.Namespace)
		idx++
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT id, namespace, apiurl, weburl FROM build_services WHERE %s LIMIT 1`, where)

	var svc model.BuildService
	err := r.q.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.Namespace, &svc.APIURL, &svc.WebURL)
	if err == sql.ErrNoRows {
		return model.BuildService{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBuildService"), err)
		return model.BuildService{}, repository.ErrFailedToGet
	}
	return svc, nil
}

// ListBuildServices returns all build services.
func (r *implRepository) ListBuildServices(ctx context.Context) ([]model.BuildService, error) {
	const query = `SELECT id, namespace, apiurl, weburl FROM build_services ORDER BY namespace`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBuildServices"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var services []model.BuildService
	for rows.Next() {
		var svc model.BuildService
		if err := rows.Scan(&svc.ID, &svc.Namespace, &svc.APIURL, &svc.WebURL); err != nil {
			return nil, repository.ErrFailedToList
		}
		services = append(services, svc)
	}
	return services, nil
}
