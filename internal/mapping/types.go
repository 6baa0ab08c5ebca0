package mapping

import "github.com/OlegGirko/boss-launcher-webhook/internal/model"

// --- UseCase Inputs ---

// CreateMappingInput carries the fields for a new mapping. The owning
// user always comes from the caller's scope, never from here.
type CreateMappingInput struct {
	RepoURL string
	Branch  string
	Package string
	Project string
	OBSID   int64
	Build   bool

	// Revision/Tag, when present, start the mapping's revision record.
	Revision string
	Tag      string
}

// LSRPatch is the optional last-seen-revision sub-object of a partial
// update. Nil pointers mean "field not supplied".
type LSRPatch struct {
	Revision *string
	Tag      *string
}

// UpdateMappingInput is a partial update: only non-nil fields are applied
// over the mapping's current values.
type UpdateMappingInput struct {
	ID      int64
	RepoURL *string
	Branch  *string
	Package *string
	Project *string
	User    *string
	OBSID   *int64
	Build   *bool

	// Either of these implies a revision update. A top-level Revision
	// takes precedence over one inside LSR; it models the primary
	// webhook signal.
	LSR      *LSRPatch
	Revision *string
	Tag      *string
}

// ListMappingsInput filters the mapping collection.
type ListMappingsInput struct {
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
	Limit           int
	Offset          int
}

// TargetKey is the external lookup key (build service namespace, project,
// package).
type TargetKey struct {
	OBSName string
	Project string
	Package string
}

// ListRevisionsInput filters the revision collection.
type ListRevisionsInput struct {
	MappingID int64
	Limit     int
	Offset    int
}

// UpdateRevisionInput is a partial revision update. An empty tag never
// overwrites a known tag.
type UpdateRevisionInput struct {
	ID       int64
	Revision *string
	Tag      *string
}

// --- UseCase Outputs ---

type MappingOutput struct {
	Mapping model.WebHookMapping
}

type CreateMappingOutput struct {
	Mapping model.WebHookMapping
}

type UpdateMappingOutput struct {
	Mapping model.WebHookMapping
}

type ListMappingsOutput struct {
	Mappings []model.WebHookMapping
	Total    int
	Limit    int
	Offset   int
}

// TriggerOutput carries the human-readable trigger status message.
type TriggerOutput struct {
	Message string
}

// FindOutput reports the mapping for a target key, or Found=false when no
// mapping exists (not an error on this path).
type FindOutput struct {
	Mapping model.WebHookMapping
	Found   bool
}

// UpdateOrCreateOutput is the result of the find PUT: either an existing
// mapping was triggered, or a new one was created.
type UpdateOrCreateOutput struct {
	Created bool
	Mapping model.WebHookMapping
	Message string
}

// MappingGroup is one project's worth of mappings in the landing listing.
type MappingGroup struct {
	Official  bool
	Personal  bool
	OBSWebURL string
	Packages  []model.WebHookMapping
}

type GroupedListOutput struct {
	Groups map[string]MappingGroup
}

type RevisionOutput struct {
	Revision model.LastSeenRevision
}

type ListRevisionsOutput struct {
	Revisions []model.LastSeenRevision
	Total     int
	Limit     int
	Offset    int
}

type BuildServiceOutput struct {
	Service model.BuildService
}

type ListBuildServicesOutput struct {
	Services []model.BuildService
}
