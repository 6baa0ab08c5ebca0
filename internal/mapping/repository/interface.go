package repository

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// Repository is the composed interface for the mapping registry store.
type Repository interface {
	MappingRepository
	RevisionRepository
	BuildServiceRepository
	ProjectRepository

	// InTransaction runs fn against a Repository bound to one database
	// transaction. Every write inside fn commits together or not at
	// all; concurrent readers never observe a mapping updated with its
	// revision record stale or vice versa.
	InTransaction(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}

// MappingRepository defines data access for WebHookMapping entities.
// Lookups return zero-value entities (ID == 0) when not found; not-found
// is not an error at this layer.
type MappingRepository interface {
	CreateMapping(ctx context.Context, opt CreateMappingOptions) (model.WebHookMapping, error)
	GetOneMapping(ctx context.Context, opt GetOneMappingOptions) (model.WebHookMapping, error)
	ListMappings(ctx context.Context, opt ListMappingsOptions) ([]model.WebHookMapping, int, error)
	UpdateMapping(ctx context.Context, opt UpdateMappingOptions) (model.WebHookMapping, error)
	DeleteMapping(ctx context.Context, id int64) error
}

// RevisionRepository defines data access for LastSeenRevision entities.
type RevisionRepository interface {
	CreateRevision(ctx context.Context, opt CreateRevisionOptions) (model.LastSeenRevision, error)
	// GetRevisionForMapping returns the mapping's revision record, or a
	// zero value when none has been reported yet.
	GetRevisionForMapping(ctx context.Context, mappingID int64) (model.LastSeenRevision, error)
	GetOneRevision(ctx context.Context, id int64) (model.LastSeenRevision, error)
	ListRevisions(ctx context.Context, opt ListRevisionsOptions) ([]model.LastSeenRevision, int, error)
	UpdateRevision(ctx context.Context, opt UpdateRevisionOptions) (model.LastSeenRevision, error)
}

// BuildServiceRepository defines read access to build services.
type BuildServiceRepository interface {
	GetOneBuildService(ctx context.Context, opt GetOneBuildServiceOptions) (model.BuildService, error)
	ListBuildServices(ctx context.Context) ([]model.BuildService, error)
}

// ProjectRepository defines read access to projects.
type ProjectRepository interface {
	// ListOfficialProjects returns projects flagged official AND allowed.
	ListOfficialProjects(ctx context.Context) ([]model.Project, error)
}
