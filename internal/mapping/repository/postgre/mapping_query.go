package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
)

// buildGetOneMappingQuery builds WHERE clause + args for GetOneMapping.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneMappingQuery(opt repository.GetOneMappingOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("m.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.OBSNamespace != "" {
		conditions = append(conditions, fmt.Sprintf("o.namespace = $%d", idx))
		args = append(args, opt.OBSNamespace)
		idx++
	}
	if opt.Project != "" {
		conditions = append(conditions, fmt.Sprintf("m.project = $%d", idx))
		args = append(args, opt.Project)
		idx++
	}
	if opt.Package != "" {
		conditions = append(conditions, fmt.Sprintf("m.package = $%d", idx))
		args = append(args, opt.Package)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// mappingConditions builds the shared filter conditions for list/count.
func (r *implRepository) mappingConditions(opt repository.ListMappingsOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	add := func(cond string, arg any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, arg)
		idx++
	}

	if opt.ID != 0 {
		add("m.id = $%d", opt.ID)
	}
	if opt.Package != "" {
		add("m.package = $%d", opt.Package)
	}
	if opt.PackageContains != "" {
		add("m.package ILIKE $%d", "%"+opt.PackageContains+"%")
	}
	if opt.Project != "" {
		add("m.project = $%d", opt.Project)
	}
	if opt.ProjectContains != "" {
		add("m.project ILIKE $%d", "%"+opt.ProjectContains+"%")
	}
	if opt.RepoURL != "" {
		add("m.repourl = $%d", opt.RepoURL)
	}
	if opt.RepoURLContains != "" {
		add("m.repourl ILIKE $%d", "%"+opt.RepoURLContains+"%")
	}
	if opt.Branch != "" {
		add("m.branch = $%d", opt.Branch)
	}
	if opt.User != "" {
		add("m.username = $%d", opt.User)
	}
	if opt.Build != nil {
		add("m.build = $%d", *opt.Build)
	}
	if opt.ExcludeEmptyPackage {
		conditions = append(conditions, "m.package <> ''")
	}

	// Landing visibility: project is official+allowed OR owned by viewer.
	// The ownership branch is only emitted for a named viewer; an empty
	// viewer name must never match rows with an empty username.
	switch {
	case len(opt.VisibleProjects) > 0 && opt.VisibleToUser != "":
		conditions = append(conditions,
			fmt.Sprintf("(m.project = ANY($%d) OR m.username = $%d)", idx, idx+1))
		args = append(args, pq.Array(opt.VisibleProjects), opt.VisibleToUser)
		idx += 2
	case len(opt.VisibleProjects) > 0:
		add("m.project = ANY($%d)", pq.Array(opt.VisibleProjects))
	case opt.VisibleToUser != "":
		add("m.username = $%d", opt.VisibleToUser)
	}

	return conditions, args
}

// buildCountMappingsQuery builds WHERE clause + args for counting
// mappings (no pagination).
func (r *implRepository) buildCountMappingsQuery(opt repository.ListMappingsOptions) (string, []any) {
	conditions, args := r.mappingConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListMappingsQuery builds the full WHERE + ORDER + LIMIT + OFFSET
// clause for ListMappings.
func (r *implRepository) buildListMappingsQuery(opt repository.ListMappingsOptions) (string, []any) {
	var parts []string

	conditions, args := r.mappingConditions(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "m.project, m.package"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
