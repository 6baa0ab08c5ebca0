package repository

// CreateMappingOptions holds parameters for inserting a new mapping.
type CreateMappingOptions struct {
	RepoURL string
	Branch  string
	Package string
	Project string
	User    string
	OBSID   int64
	Build   bool
}

// GetOneMappingOptions holds filter parameters for fetching a single
// mapping. All non-empty fields are applied as AND conditions; either ID
// or the (OBSNamespace, Project, Package) triple is the usual key.
type GetOneMappingOptions struct {
	ID           int64
	OBSNamespace string
	Project      string
	Package      string
}

// ListMappingsOptions holds filter and pagination parameters for listing
// mappings. Contains variants match substrings, exact fields match whole
// values. VisibleProjects/VisibleToUser together express the landing
// visibility predicate: project in VisibleProjects OR owned by
// VisibleToUser.
type ListMappingsOptions struct {
	ID              int64
	Package         string
	PackageContains string
	Project         string
	ProjectContains string
	RepoURL         string
	RepoURLContains string
	Branch          string
	User            string
	Build           *bool

	VisibleProjects     []string
	VisibleToUser       string
	ExcludeEmptyPackage bool

	Limit   int
	Offset  int
	OrderBy string
}

// UpdateMappingOptions carries the full merged field set for an update.
type UpdateMappingOptions struct {
	ID      int64
	RepoURL string
	Branch  string
	Package string
	Project string
	User    string
	OBSID   int64
	Build   bool
}

// CreateRevisionOptions holds parameters for inserting a revision record.
type CreateRevisionOptions struct {
	MappingID int64
	Revision  string
	Tag       string
}

// ListRevisionsOptions holds filter and pagination parameters for listing
// revision records.
type ListRevisionsOptions struct {
	MappingID int64
	Limit     int
	Offset    int
}

// UpdateRevisionOptions carries the full merged field set for a revision
// update.
type UpdateRevisionOptions struct {
	ID       int64
	Revision string
	Tag      string
}

// GetOneBuildServiceOptions holds filter parameters for fetching a build
// service, by id or by namespace.
type GetOneBuildServiceOptions struct {
	ID        int64
	Namespace string
}
