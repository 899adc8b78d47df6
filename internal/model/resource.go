package model

import "time"

// ResourceKind identifies one of the hosted resource registries
type ResourceKind string

const (
	KindApp        ResourceKind = "app"
	KindBucket     ResourceKind = "bucket"
	KindDatabase   ResourceKind = "database"
	KindStaticSite ResourceKind = "static_site"
)

// Kinds lists all resource kinds in a fixed order
func Kinds() []ResourceKind {
	return []ResourceKind{KindApp, KindBucket, KindDatabase, KindStaticSite}
}

// Valid reports whether k names a known registry
func (k ResourceKind) Valid() bool {
	switch k {
	case KindApp, KindBucket, KindDatabase, KindStaticSite:
		return true
	}
	return false
}

// Resource is a record in one of the hosted resource registries.
// IDs are unique within a kind only, not across kinds. Records carry no
// owning-user reference: every authenticated caller shares one global
// namespace per kind.
type Resource struct {
	ID        int
	Kind      ResourceKind
	Name      string
	CreatedAt time.Time
}
