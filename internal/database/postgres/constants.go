package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Sitemap Operations
const (
	ErrMsgFailedToGetSitemapEntry    = "failed to get sitemap entry"
	ErrMsgFailedToGetSitemapChildren = "failed to get sitemap children"
	ErrMsgFailedToScanSitemapEntry   = "failed to scan sitemap entry"
	ErrMsgFailedToUpsertSitemapEntry = "failed to upsert sitemap entry"
)

// Error Messages - Extension Mapping Operations
const (
	ErrMsgFailedToGetMapping    = "failed to get extension mapping"
	ErrMsgFailedToListMappings  = "failed to list extension mappings"
	ErrMsgFailedToInsertMapping = "failed to insert extension mapping"
	ErrMsgFailedToDeleteMapping = "failed to delete extension mapping"
)
