package menu

// State is the offline state of a resource relative to the online project.
type State string

const (
	StateUnchanged State = "U"
	StateChanged   State = "C"
	StateNew       State = "N"
	StateDeleted   State = "D"
)

// LockType describes the lock held on a resource.
type LockType string

const (
	LockNone      LockType = ""
	LockExclusive LockType = "exclusive"
	LockShared    LockType = "shared"
	LockWorkflow  LockType = "workflow"
	LockTemporary LockType = "temporary"
)

// IsWorkflow reports whether the lock comes from a workflow project.
func (l LockType) IsWorkflow() bool {
	return l == LockWorkflow
}

// Resource is the per-resource information menu rules look at.
type Resource struct {
	Path                       string   `json:"path" validate:"required"`
	State                      State    `json:"state" validate:"omitempty,oneof=U C N D"`
	InsideProject              bool     `json:"inside_project"`
	ProjectLockedForPublishing bool     `json:"project_locked_for_publishing"`
	LockedByName               string   `json:"locked_by,omitempty"`
	LockType                   LockType `json:"lock_type,omitempty" validate:"omitempty,oneof=exclusive shared workflow temporary"`
}

// IsDeleted reports whether the resource is marked deleted.
func (r Resource) IsDeleted() bool {
	return r.State == StateDeleted
}

// IsUnlocked reports whether nobody holds a lock on the resource.
func (r Resource) IsUnlocked() bool {
	return isBlank(r.LockedByName)
}

// Context carries the request-wide settings the rules need.
type Context struct {
	UserName          string `json:"user_name"`
	AutoLockResources bool   `json:"auto_lock_resources"`
}
