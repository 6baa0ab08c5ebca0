package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

const revisionColumns = `id, mapping_id, revision, tag, updated_at`

// CreateRevision inserts the revision record for a mapping. The
// mapping_id column carries a UNIQUE constraint: at most one record per
// mapping exists.
func (r *implRepository) CreateRevision(ctx context.Context, opt repository.CreateRevisionOptions) (model.LastSeenRevision, error) {
	query := fmt.Sprintf(`
		INSERT INTO last_seen_revisions (mapping_id, revision, tag, updated_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s`, revisionColumns)

	var lsr model.LastSeenRevision
	err := r.q.QueryRowContext(ctx, query, opt.MappingID, opt.Revision, opt.Tag).Scan(
		&lsr.ID, &lsr.MappingID, &lsr.Revision, &lsr.Tag, &lsr.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRevision"), err)
		return model.LastSeenRevision{}, repository.ErrFailedToInsert
	}
	return lsr, nil
}

// GetRevisionForMapping returns the revision record linked to a mapping,
// or a zero value (ID == 0) when none has been reported yet.
func (r *implRepository) GetRevisionForMapping(ctx context.Context, mappingID int64) (model.LastSeenRevision, error) {
	query := fmt.Sprintf(`SELECT %s FROM last_seen_revisions WHERE mapping_id = $1`, revisionColumns)

	var lsr model.LastSeenRevision
	err := r.q.QueryRowContext(ctx, query, mappingID).Scan(
		&lsr.ID, &lsr.MappingID, &lsr.Revision, &lsr.Tag, &lsr.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.LastSeenRevision{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRevisionForMapping"), err)
		return model.LastSeenRevision{}, repository.ErrFailedToGet
	}
	return lsr, nil
}

// GetOneRevision returns a revision record by id, zero value when absent.
func (r *implRepository) GetOneRevision(ctx context.Context, id int64) (model.LastSeenRevision, error) {
	query := fmt.Sprintf(`SELECT %s FROM last_seen_revisions WHERE id = $1`, revisionColumns)

	var lsr model.LastSeenRevision
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&lsr.ID, &lsr.MappingID, &lsr.Revision, &lsr.Tag, &lsr.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.LastSeenRevision{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRevision"), err)
		return model.LastSeenRevision{}, repository.ErrFailedToGet
	}
	return lsr, nil
}

// ListRevisions returns a paginated list of revision records and the
// total count.
func (r *implRepository) ListRevisions(ctx context.Context, opt repository.ListRevisionsOptions) ([]model.LastSeenRevision, int, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.MappingID != 0 {
		conditions = append(conditions, fmt.Sprintf("mapping_id = $%d", idx))
		args = append(args, opt.MappingID)
		idx++
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM last_seen_revisions WHERE %s`, where)
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListRevisions"), err)
		return nil, 0, repository.ErrFailedToList
	}

	query := fmt.Sprintf(`SELECT %s FROM last_seen_revisions WHERE %s ORDER BY id`, revisionColumns, where)
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, opt.Offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRevisions"), err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	var revisions []model.LastSeenRevision
	for rows.Next() {
		var lsr model.LastSeenRevision
		if err := rows.Scan(&lsr.ID, &lsr.MappingID, &lsr.Revision, &lsr.Tag, &lsr.UpdatedAt); err != nil {
			return nil, 0, repository.ErrFailedToList
		}
		revisions = append(revisions, lsr)
	}
	return revisions, total, nil
}

// UpdateRevision updates a revision record by ID with the full merged
// field set and returns the updated entity.
func (r *implRepository) UpdateRevision(ctx context.Context, opt repository.UpdateRevisionOptions) (model.LastSeenRevision, error) {
	query := fmt.Sprintf(`
		UPDATE last_seen_revisions
		SET revision = $1, tag = $2, updated_at = $3
		WHERE id = $4
		RETURNING %s`, revisionColumns)

	var lsr model.LastSeenRevision
	err := r.q.QueryRowContext(ctx, query, opt.Revision, opt.Tag, time.Now(), opt.ID).Scan(
		&lsr.ID, &lsr.MappingID, &lsr.Revision, &lsr.Tag, &lsr.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.LastSeenRevision{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRevision"), err)
		return model.LastSeenRevision{}, repository.ErrFailedToUpdate
	}
	return lsr, nil
}
