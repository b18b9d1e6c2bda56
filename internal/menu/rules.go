package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/cmsadmin/internal/domain"
)

// Message keys for inactive menu items.
const (
	KeyResourceDeleted = "GUI_EXPLORER_CONTEXT_INACTIVE_DELETED_0"
)

// Rule decides whether it applies to the selected resources and, if so, how the item is shown.
// The first resource is the one the rules look at.
type Rule interface {
	Name() string
	Matches(ctx Context, resources []Resource) bool
	Visibility(ctx Context, resources []Resource) VisibilityMode
}

// ActiveAlways matches everything and shows the item active.
type ActiveAlways struct{}

func (ActiveAlways) Name() string                                  { return "ActiveAlways" }
func (ActiveAlways) Matches(Context, []Resource) bool              { return true }
func (ActiveAlways) Visibility(Context, []Resource) VisibilityMode { return ModeActive }

// InvisibleAlways matches everything and hides the item.
type InvisibleAlways struct{}

func (InvisibleAlways) Name() string                                  { return "InvisibleAlways" }
func (InvisibleAlways) Matches(Context, []Resource) bool              { return true }
func (InvisibleAlways) Visibility(Context, []Resource) VisibilityMode { return ModeInvisible }

// PrSameUnlockedActiveDeletedNoAutoLock matches unlocked resources in the current
// project when auto lock is disabled, and activates the item only for deleted resources.
type PrSameUnlockedActiveDeletedNoAutoLock struct{}

func (PrSameUnlockedActiveDeletedNoAutoLock) Name() string {
	return "PrSameUnlockedActiveDeletedNoAutoLock"
}

func (PrSameUnlockedActiveDeletedNoAutoLock) Matches(ctx Context, resources []Resource) bool {
	return matchesUnlockedNoAutoLock(ctx, resources)
}

func (PrSameUnlockedActiveDeletedNoAutoLock) Visibility(_ Context, resources []Resource) VisibilityMode {
	if len(resources) > 0 && resources[0].IsDeleted() {
		return ModeActive
	}
	return ModeInvisible
}

// PrSameUnlockedActiveNotDeletedNoAutoLock is the counterpart for resources that are not deleted.
type PrSameUnlockedActiveNotDeletedNoAutoLock struct{}

func (PrSameUnlockedActiveNotDeletedNoAutoLock) Name() string {
	return "PrSameUnlockedActiveNotDeletedNoAutoLock"
}

func (PrSameUnlockedActiveNotDeletedNoAutoLock) Matches(ctx Context, resources []Resource) bool {
	return matchesUnlockedNoAutoLock(ctx, resources)
}

func (PrSameUnlockedActiveNotDeletedNoAutoLock) Visibility(_ Context, resources []Resource) VisibilityMode {
	if len(resources) > 0 && !resources[0].IsDeleted() {
		return ModeActive
	}
	return ModeInvisible
}

// PrSameLockedActiveNotDeleted matches resources in the current project locked by the current user.
// Deleted resources get an inactive item.
type PrSameLockedActiveNotDeleted struct{}

func (PrSameLockedActiveNotDeleted) Name() string { return "PrSameLockedActiveNotDeleted" }

func (PrSameLockedActiveNotDeleted) Matches(ctx Context, resources []Resource) bool {
	if len(resources) == 0 || !resources[0].InsideProject {
		return false
	}
	r := resources[0]
	return !r.IsUnlocked() && r.LockedByName == ctx.UserName
}

func (PrSameLockedActiveNotDeleted) Visibility(_ Context, resources []Resource) VisibilityMode {
	if len(resources) == 0 {
		return ModeInvisible
	}
	if resources[0].IsDeleted() {
		return Inactive(KeyResourceDeleted)
	}
	return ModeActive
}

// PrOtherInvisible hides the item for resources outside the current project.
type PrOtherInvisible struct{}

func (PrOtherInvisible) Name() string { return "PrOtherInvisible" }

func (PrOtherInvisible) Matches(_ Context, resources []Resource) bool {
	return len(resources) > 0 && !resources[0].InsideProject
}

func (PrOtherInvisible) Visibility(Context, []Resource) VisibilityMode { return ModeInvisible }

// matchesUnlockedNoAutoLock: inside the project, and either unlocked in a project that is not
// locked for publishing or held by a workflow lock, with auto lock off.
func matchesUnlockedNoAutoLock(ctx Context, resources []Resource) bool {
	if len(resources) == 0 {
		return false
	}
	r := resources[0]
	if !r.InsideProject {
		return false
	}
	matches := (!r.ProjectLockedForPublishing && r.IsUnlocked()) || r.LockType.IsWorkflow()
	return matches && !ctx.AutoLockResources
}

var registry = map[string]Rule{}

func register(rules ...Rule) {
	for _, r := range rules {
		registry[r.Name()] = r
	}
}

func init() {
	register(
		ActiveAlways{},
		InvisibleAlways{},
		PrSameUnlockedActiveDeletedNoAutoLock{},
		PrSameUnlockedActiveNotDeletedNoAutoLock{},
		PrSameLockedActiveNotDeleted{},
		PrOtherInvisible{},
	)
}

// Lookup returns the rule registered under name.
func Lookup(name string) (Rule, error) {
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRule, name)
	}
	return r, nil
}

// RuleNames lists the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
