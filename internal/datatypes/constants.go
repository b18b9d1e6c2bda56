package datatypes

// DefaultResourceType is reported for files whose extension is not mapped
const DefaultResourceType = "plain"

// Error messages
const (
	ErrMsgEmptyExtension   = "extension is empty"
	ErrMsgBlankInExtension = "extension contains a blank"
	ErrMsgAddFailed        = "failed to add extension mapping"
	ErrMsgRemoveFailed     = "failed to remove extension mapping"
	ErrMsgListFailed       = "failed to list extension mappings"
	ErrMsgLookupFailed     = "failed to look up extension mapping"
)

// Log messages
const (
	LogMsgMappingAdded   = "Extension mapping added"
	LogMsgMappingRemoved = "Extension mapping removed"
)
