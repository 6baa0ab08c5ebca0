package usecase_test

import (
	"context"
	"errors"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockLauncher records launched payloads.
type mockLauncher struct {
	fail     bool
	payloads []map[string]any
}

func (m *mockLauncher) Launch(ctx context.Context, payload map[string]any) error {
	if m.fail {
		return errors.New("broker down")
	}
	m.payloads = append(m.payloads, payload)
	return nil
}

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mappings  map[int64]model.WebHookMapping
	revisions map[int64]model.LastSeenRevision
	services  map[int64]model.BuildService
	projects  []model.Project

	nextMappingID  int64
	nextRevisionID int64

	failTx bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		mappings:       map[int64]model.WebHookMapping{},
		revisions:      map[int64]model.LastSeenRevision{},
		services:       map[int64]model.BuildService{},
		nextMappingID:  1,
		nextRevisionID: 1,
	}
}

func (m *mockRepo) addService(svc model.BuildService) {
	m.services[svc.ID] = svc
}

func (m *mockRepo) addMapping(wm model.WebHookMapping) model.WebHookMapping {
	if wm.ID == 0 {
		wm.ID = m.nextMappingID
		m.nextMappingID++
	} else if wm.ID >= m.nextMappingID {
		m.nextMappingID = wm.ID + 1
	}
	wm.OBS = m.services[wm.OBSID]
	m.mappings[wm.ID] = wm
	return wm
}

func (m *mockRepo) addRevision(lsr model.LastSeenRevision) model.LastSeenRevision {
	if lsr.ID == 0 {
		lsr.ID = m.nextRevisionID
		m.nextRevisionID++
	} else if lsr.ID >= m.nextRevisionID {
		m.nextRevisionID = lsr.ID + 1
	}
	m.revisions[lsr.ID] = lsr
	return lsr
}

func (m *mockRepo) CreateMapping(ctx context.Context, opt repository.CreateMappingOptions) (model.WebHookMapping, error) {
	return m.addMapping(model.WebHookMapping{
		RepoURL: opt.RepoURL,
		Branch:  opt.Branch,
		Package: opt.Package,
		Project: opt.Project,
		User:    opt.User,
		OBSID:   opt.OBSID,
		Build:   opt.Build,
	}), nil
}

func (m *mockRepo) GetOneMapping(ctx context.Context, opt repository.GetOneMappingOptions) (model.WebHookMapping, error) {
	for _, wm := range m.mappings {
		if opt.ID != 0 && wm.ID != opt.ID {
			continue
		}
		if opt.OBSNamespace != "" && wm.OBS.Namespace != opt.OBSNamespace {
			continue
		}
		if opt.Project != "" && wm.Project != opt.Project {
			continue
		}
		if opt.Package != "" && wm.Package != opt.Package {
			continue
		}
		return wm, nil
	}
	return model.WebHookMapping{}, nil
}

func (m *mockRepo) ListMappings(ctx context.Context, opt repository.ListMappingsOptions) ([]model.WebHookMapping, int, error) {
	var out []model.WebHookMapping
	for id := int64(1); id < m.nextMappingID; id++ {
		wm, ok := m.mappings[id]
		if !ok {
			continue
		}
		if opt.User != "" && wm.User != opt.User {
			continue
		}
		if opt.Project != "" && wm.Project != opt.Project {
			continue
		}
		if opt.ExcludeEmptyPackage && wm.Package == "" {
			continue
		}
		if len(opt.VisibleProjects) > 0 || opt.VisibleToUser != "" {
			visible := wm.User == opt.VisibleToUser && opt.VisibleToUser != ""
			for _, p := range opt.VisibleProjects {
				if wm.Project == p {
					visible = true
				}
			}
			if !visible {
				continue
			}
		}
		out = append(out, wm)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateMapping(ctx context.Context, opt repository.UpdateMappingOptions) (model.WebHookMapping, error) {
	wm, ok := m.mappings[opt.ID]
	if !ok {
		return model.WebHookMapping{}, nil
	}
	wm.RepoURL = opt.RepoURL
	wm.Branch = opt.Branch
	wm.Package = opt.Package
	wm.Project = opt.Project
	wm.User = opt.User
	wm.OBSID = opt.OBSID
	wm.Build = opt.Build
	wm.OBS = m.services[opt.OBSID]
	m.mappings[opt.ID] = wm
	return wm, nil
}

func (m *mockRepo) DeleteMapping(ctx context.Context, id int64) error {
	delete(m.mappings, id)
	for rid, lsr := range m.revisions {
		if lsr.MappingID == id {
			delete(m.revisions, rid)
		}
	}
	return nil
}

func (m *mockRepo) CreateRevision(ctx context.Context, opt repository.CreateRevisionOptions) (model.LastSeenRevision, error) {
	return m.addRevision(model.LastSeenRevision{
		MappingID: opt.MappingID,
		Revision:  opt.Revision,
		Tag:       opt.Tag,
	}), nil
}

func (m *mockRepo) GetRevisionForMapping(ctx context.Context, mappingID int64) (model.LastSeenRevision, error) {
	for _, lsr := range m.revisions {
		if lsr.MappingID == mappingID {
			return lsr, nil
		}
	}
	return model.LastSeenRevision{}, nil
}

func (m *mockRepo) GetOneRevision(ctx context.Context, id int64) (model.LastSeenRevision, error) {
	return m.revisions[id], nil
}

func (m *mockRepo) ListRevisions(ctx context.Context, opt repository.ListRevisionsOptions) ([]model.LastSeenRevision, int, error) {
	var out []model.LastSeenRevision
	for id := int64(1); id < m.nextRevisionID; id++ {
		lsr, ok := m.revisions[id]
		if !ok {
			continue
		}
		if opt.MappingID != 0 && lsr.MappingID != opt.MappingID {
			continue
		}
		out = append(out, lsr)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateRevision(ctx context.Context, opt repository.UpdateRevisionOptions) (model.LastSeenRevision, error) {
	lsr, ok := m.revisions[opt.ID]
	if !ok {
		return model.LastSeenRevision{}, nil
	}
	lsr.Revision = opt.Revision
	lsr.Tag = opt.Tag
	m.revisions[opt.ID] = lsr
	return lsr, nil
}

func (m *mockRepo) GetOneBuildService(ctx context.Context, opt repository.GetOneBuildServiceOptions) (model.BuildService, error) {
	if opt.ID != 0 {
		return m.services[opt.ID], nil
	}
	for _, svc := range m.services {
		if svc.Namespace == opt.Namespace {
			return svc, nil
		}
	}
	return model.BuildService{}, nil
}

func (m *mockRepo) ListBuildServices(ctx context.Context) ([]model.BuildService, error) {
	var out []model.BuildService
	for id := int64(1); id < 100; id++ {
		if svc, ok := m.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *mockRepo) ListOfficialProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	for _, p := range m.projects {
		if p.Official && p.Allowed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) InTransaction(ctx context.Context, fn func(ctx context.Context, r repository.Repository) error) error {
	if m.failTx {
		return errors.New("begin tx failed")
	}
	return fn(ctx, m)
}
