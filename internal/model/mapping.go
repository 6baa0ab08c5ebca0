package model

import "time"

// WebHookMapping binds one watched repository/branch/package to one build
// project on one build service. A mapping with an empty package is
// considered inactive and is hidden from listings.
type WebHookMapping struct {
	ID        int64
	RepoURL   string
	Branch    string
	Package   string
	Project   string
	User      string
	OBSID     int64
	Build     bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// OBS is the joined build service, populated by lookups.
	OBS BuildService
	// LSR is the mapping's last seen revision, nil until first reported.
	LSR *LastSeenRevision
}

// LastSeenRevision records the most recently processed revision for a
// mapping. At most one exists per mapping; it is created lazily the first
// time a revision is reported.
type LastSeenRevision struct {
	ID        int64
	MappingID int64
	Revision  string
	Tag       string
	UpdatedAt time.Time
}

// BuildService is a remote build backend addressable by namespace.
type BuildService struct {
	ID        int64
	Namespace string
	APIURL    string
	WebURL    string
}

// Project is a named grouping used to decide listing visibility.
type Project struct {
	ID       int64
	Name     string
	Official bool
	Allowed  bool
}
