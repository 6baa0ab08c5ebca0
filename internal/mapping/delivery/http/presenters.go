package http

import (
	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	RepoURL  string `json:"repourl"`
	Branch   string `json:"branch"`
	Package  string `json:"package"`
	Project  string `json:"project"`
	OBS      int64  `json:"obs"`
	Build    bool   `json:"build"`
	Revision string `json:"revision"`
	Tag      string `json:"tag"`
}

func (r createReq) toInput() mapping.CreateMappingInput {
	return mapping.CreateMappingInput{
		RepoURL:  r.RepoURL,
		Branch:   r.Branch,
		Package:  r.Package,
		Project:  r.Project,
		OBSID:    r.OBS,
		Build:    r.Build,
		Revision: r.Revision,
		Tag:      r.Tag,
	}
}

type lsrPatchReq struct {
	Revision *string `json:"revision"`
	Tag      *string `json:"tag"`
}

// updateReq is a partial update: absent fields stay nil and keep the
// mapping's current values.
type updateReq struct {
	ID      int64   `json:"-"` // populated from URI param
	RepoURL *string `json:"repourl"`
	Branch  *string `json:"branch"`
	Package *string `json:"package"`
	Project *string `json:"project"`
	User    *string `json:"user"`
	OBS     *int64  `json:"obs"`
	Build   *bool   `json:"build"`

	LSR      *lsrPatchReq `json:"lsr"`
	Revision *string      `json:"revision"`
	Tag      *string      `json:"tag"`
}

func (r updateReq) toInput() mapping.UpdateMappingInput {
	input := mapping.UpdateMappingInput{
		ID:       r.ID,
		RepoURL:  r.RepoURL,
		Branch:   r.Branch,
		Package:  r.Package,
		Project:  r.Project,
		User:     r.User,
		OBSID:    r.OBS,
		Build:    r.Build,
		Revision: r.Revision,
		Tag:      r.Tag,
	}
	if r.LSR != nil {
		input.LSR = &mapping.LSRPatch{
			Revision: r.LSR.Revision,
			Tag:      r.LSR.Tag,
		}
	}
	return input
}

type listReq struct {
	ID              int64  `form:"id"`
	Package         string `form:"package"`
	PackageContains string `form:"package_contains"`
	Project         string `form:"project"`
	ProjectContains string `form:"project_contains"`
	RepoURL         string `form:"repourl"`
	RepoURLContains string `form:"repourl_contains"`
	Branch          string `form:"branch"`
	User            string `form:"user"`
	Build           *bool  `form:"build"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
}

func (r listReq) toInput() mapping.ListMappingsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return mapping.ListMappingsInput{
		ID:              r.ID,
		Package:         r.Package,
		PackageContains: r.PackageContains,
		Project:         r.Project,
		ProjectContains: r.ProjectContains,
		RepoURL:         r.RepoURL,
		RepoURLContains: r.RepoURLContains,
		Branch:          r.Branch,
		User:            r.User,
		Build:           r.Build,
		Limit:           limit,
		Offset:          offset,
	}
}

type listRevisionsReq struct {
	MappingID int64 `form:"mapping_id"`
	Limit     int   `form:"limit"`
	Offset    int   `form:"offset"`
}

func (r listRevisionsReq) toInput() mapping.ListRevisionsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return mapping.ListRevisionsInput{
		MappingID: r.MappingID,
		Limit:     limit,
		Offset:    offset,
	}
}

type updateRevisionReq struct {
	ID       int64   `json:"-"` // populated from URI param
	Revision *string `json:"revision"`
	Tag      *string `json:"tag"`
}

func (r updateRevisionReq) toInput() mapping.UpdateRevisionInput {
	return mapping.UpdateRevisionInput{
		ID:       r.ID,
		Revision: r.Revision,
		Tag:      r.Tag,
	}
}

// --- Response DTOs ---

type buildServiceResp struct {
	ID        int64  `json:"id"`
	Namespace string `json:"namespace"`
	APIURL    string `json:"apiurl"`
	WebURL    string `json:"weburl"`
}

func newBuildServiceResp(svc model.BuildService) buildServiceResp {
	return buildServiceResp{
		ID:        svc.ID,
		Namespace: svc.Namespace,
		APIURL:    svc.APIURL,
		WebURL:    svc.WebURL,
	}
}

type revisionResp struct {
	ID        int64  `json:"id"`
	MappingID int64  `json:"mapping_id"`
	Revision  string `json:"revision"`
	Tag       string `json:"tag,omitempty"`
}

func newRevisionResp(lsr model.LastSeenRevision) revisionResp {
	return revisionResp{
		ID:        lsr.ID,
		MappingID: lsr.MappingID,
		Revision:  lsr.Revision,
		Tag:       lsr.Tag,
	}
}

type mappingResp struct {
	ID      int64            `json:"id"`
	RepoURL string           `json:"repourl"`
	Branch  string           `json:"branch"`
	Package string           `json:"package"`
	Project string           `json:"project"`
	User    string           `json:"user"`
	OBS     buildServiceResp `json:"obs"`
	Build   bool             `json:"build"`
	LSR     *revisionResp    `json:"lsr,omitempty"`
}

func newMappingResp(m model.WebHookMapping) mappingResp {
	resp := mappingResp{
		ID:      m.ID,
		RepoURL: m.RepoURL,
		Branch:  m.Branch,
		Package: m.Package,
		Project: m.Project,
		User:    m.User,
		OBS:     newBuildServiceResp(m.OBS),
		Build:   m.Build,
	}
	if m.LSR != nil {
		lsr := newRevisionResp(*m.LSR)
		resp.LSR = &lsr
	}
	return resp
}

type listResp struct {
	Mappings []mappingResp `json:"mappings"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out mapping.ListMappingsOutput) listResp {
	mappings := make([]mappingResp, len(out.Mappings))
	for i, m := range out.Mappings {
		mappings[i] = newMappingResp(m)
	}
	return listResp{
		Mappings: mappings,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type triggerResp struct {
	Message string `json:"message"`
}

type findResp struct {
	Mapping *mappingResp `json:"mapping"`
	Found   bool         `json:"found"`
}

func (h *handler) newFindResp(out mapping.FindOutput) findResp {
	if !out.Found {
		return findResp{}
	}
	m := newMappingResp(out.Mapping)
	return findResp{Mapping: &m, Found: true}
}

type updateOrCreateResp struct {
	Created bool        `json:"created"`
	Mapping mappingResp `json:"mapping"`
	Message string      `json:"message"`
}

type groupResp struct {
	Official  bool          `json:"official"`
	Personal  bool          `json:"personal"`
	OBSWebURL string        `json:"obs_weburl"`
	Packages  []mappingResp `json:"packages"`
}

type landingResp struct {
	Projects map[string]groupResp `json:"projects"`
}

func (h *handler) newLandingResp(out mapping.GroupedListOutput) landingResp {
	resp := landingResp{Projects: make(map[string]groupResp, len(out.Groups))}
	for name, g := range out.Groups {
		packages := make([]mappingResp, len(g.Packages))
		for i, m := range g.Packages {
			packages[i] = newMappingResp(m)
		}
		resp.Projects[name] = groupResp{
			Official:  g.Official,
			Personal:  g.Personal,
			OBSWebURL: g.OBSWebURL,
			Packages:  packages,
		}
	}
	return resp
}

type listRevisionsResp struct {
	Revisions []revisionResp `json:"revisions"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

func (h *handler) newListRevisionsResp(out mapping.ListRevisionsOutput) listRevisionsResp {
	revisions := make([]revisionResp, len(out.Revisions))
	for i, lsr := range out.Revisions {
		revisions[i] = newRevisionResp(lsr)
	}
	return listRevisionsResp{
		Revisions: revisions,
		Total:     out.Total,
		Limit:     out.Limit,
		Offset:    out.Offset,
	}
}

type listBuildServicesResp struct {
	Services []buildServiceResp `json:"buildservices"`
}

func (h *handler) newListBuildServicesResp(out mapping.ListBuildServicesOutput) listBuildServicesResp {
	services := make([]buildServiceResp, len(out.Services))
	for i, svc := range out.Services {
		services[i] = newBuildServiceResp(svc)
	}
	return listBuildServicesResp{Services: services}
}
