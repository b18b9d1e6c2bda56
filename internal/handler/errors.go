package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Sitemap error messages
	ErrMsgGetSitemapEntryFailed    = "Failed to get sitemap entry"
	ErrMsgGetSitemapChildrenFailed = "Failed to get sitemap children"
	ErrMsgSaveSitemapEntryFailed   = "Failed to save sitemap entry"

	// Datatype error messages
	ErrMsgListDatatypesFailed    = "Failed to list datatypes"
	ErrMsgAddExtensionFailed     = "Failed to add extension"
	ErrMsgRemoveExtensionFailed  = "Failed to remove extension"
	ErrMsgResolveExtensionFailed = "Failed to resolve resource type"
	ErrMsgExtensionNotMapped     = "Extension is not mapped"

	// Content error messages
	ErrMsgDecorateFailed        = "Failed to decorate content"
	ErrMsgExtractValuesFailed   = "Failed to extract values"
	ErrMsgEvaluateMenuFailed    = "Failed to evaluate menu rules"
	ErrMsgInvalidLocale         = "Invalid locale"
	ErrMsgPoolCheckFailed       = "Failed to check connection pools"
	ErrMsgRegisterSessionFailed = "Failed to register session"
)

// Success messages for API responses
const (
	MsgExtensionAdded       = "Extension mapped successfully"
	MsgSessionRegistered    = "Session registered"
	MsgSessionNotRegistered = "Session not registered for default user"
	MsgSitemapEntrySaved    = "Sitemap entry saved"
	MsgDecoratorCachePurged = "Decoration configuration reloaded"
)
