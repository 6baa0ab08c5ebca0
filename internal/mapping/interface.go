package mapping

import (
	"context"

	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Mapping CRUD + trigger
	Create(ctx context.Context, sc model.Scope, input CreateMappingInput) (CreateMappingOutput, error)
	List(ctx context.Context, input ListMappingsInput) (ListMappingsOutput, error)
	Detail(ctx context.Context, id int64) (MappingOutput, error)
	Update(ctx context.Context, input UpdateMappingInput) (UpdateMappingOutput, error)
	Delete(ctx context.Context, id int64) error
	Trigger(ctx context.Context, id int64) (TriggerOutput, error)

	// Target-key operations (build service namespace, project, package)
	FindByTarget(ctx context.Context, key TargetKey) (FindOutput, error)
	UpdateOrCreateByTarget(ctx context.Context, sc model.Scope, key TargetKey, input CreateMappingInput) (UpdateOrCreateOutput, error)
	TriggerByTarget(ctx context.Context, key TargetKey) (TriggerOutput, error)

	// Landing listing
	GroupedList(ctx context.Context, sc model.Scope) (GroupedListOutput, error)

	// Last seen revisions
	ListRevisions(ctx context.Context, input ListRevisionsInput) (ListRevisionsOutput, error)
	RevisionDetail(ctx context.Context, id int64) (RevisionOutput, error)
	UpdateRevision(ctx context.Context, input UpdateRevisionInput) (RevisionOutput, error)

	// Build services (read-only)
	ListBuildServices(ctx context.Context) (ListBuildServicesOutput, error)
	BuildServiceDetail(ctx context.Context, id int64) (BuildServiceOutput, error)
}
