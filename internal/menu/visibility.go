// Package menu decides how explorer context menu items are shown for the selected resources.
package menu

import "encoding/json"

// Visibility is how a menu item is rendered.
type Visibility int

const (
	// VisibilityActive shows the item and allows it to be clicked.
	VisibilityActive Visibility = iota
	// VisibilityInactive shows the item greyed out.
	VisibilityInactive
	// VisibilityInvisible hides the item.
	VisibilityInvisible
)

func (v Visibility) String() string {
	switch v {
	case VisibilityActive:
		return "active"
	case VisibilityInactive:
		return "inactive"
	default:
		return "invisible"
	}
}

// VisibilityMode is a Visibility plus, for inactive items, the message key explaining why.
type VisibilityMode struct {
	Visibility Visibility
	MessageKey string
}

var (
	ModeActive    = VisibilityMode{Visibility: VisibilityActive}
	ModeInvisible = VisibilityMode{Visibility: VisibilityInvisible}
)

// Inactive returns an inactive mode carrying messageKey.
func Inactive(messageKey string) VisibilityMode {
	return VisibilityMode{Visibility: VisibilityInactive, MessageKey: messageKey}
}

func (m VisibilityMode) IsActive() bool    { return m.Visibility == VisibilityActive }
func (m VisibilityMode) IsInactive() bool  { return m.Visibility == VisibilityInactive }
func (m VisibilityMode) IsInvisible() bool { return m.Visibility == VisibilityInvisible }

func (m VisibilityMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Visibility string `json:"visibility"`
		MessageKey string `json:"message_key,omitempty"`
	}{m.Visibility.String(), m.MessageKey})
}
