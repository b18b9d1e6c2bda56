package sitemap

// DefaultCacheSize is used when the configured cache size is not positive
const DefaultCacheSize = 512

// Error messages
const (
	ErrMsgGetEntryFailed    = "failed to get sitemap entry"
	ErrMsgGetChildrenFailed = "failed to get sitemap children"
	ErrMsgSaveEntryFailed   = "failed to save sitemap entry"
	ErrMsgParentMissing     = "parent entry missing"
)

// Log messages
const (
	LogMsgEntryLookupFailed = "Sitemap entry lookup failed"
	LogMsgEntrySaved        = "Sitemap entry saved"
)
