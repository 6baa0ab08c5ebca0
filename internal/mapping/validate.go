package mapping

import (
	"net/url"

	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

// ValidateMapping checks a fully merged mapping before persistence.
// Returns nil when valid.
func ValidateMapping(m model.WebHookMapping) ValidationErrors {
	errs := ValidationErrors{}

	if m.RepoURL == "" {
		errs["repourl"] = "repourl is required"
	} else if u, err := url.Parse(m.RepoURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs["repourl"] = "repourl must be an absolute URL"
	}
	if m.Branch == "" {
		errs["branch"] = "branch is required"
	}
	if m.Package == "" {
		errs["package"] = "package is required"
	}
	if m.Project == "" {
		errs["project"] = "project is required"
	}
	if m.OBSID == 0 {
		errs["obs"] = "obs is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateRevision checks a fully merged revision record. Returns nil
// when valid.
func ValidateRevision(r model.LastSeenRevision) ValidationErrors {
	errs := ValidationErrors{}

	if r.MappingID == 0 {
		errs["mapping"] = "mapping is required"
	}
	if r.Revision == "" {
		errs["revision"] = "revision is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
