package decorator

// Macros recognised in pre and post texts
const (
	MacroDecoration    = "${decoration}"
	MacroDecorationKey = "${decorationkey}"
	MacroLanguage      = "${language}"
)

// MapSeparator separates key and description in a decoration map line
const MapSeparator = "|"

// LocaleSeparator precedes the locale in a decoration map file name, e.g. abbr_de.txt
const LocaleSeparator = "_"

// Error messages
const (
	ErrMsgReadConfigFailed  = "failed to read decoration configuration"
	ErrMsgParseConfigFailed = "failed to parse decoration configuration"
	ErrMsgNoConfigLocale    = "decoration configuration has no content for locale"
	ErrMsgReadMapDirFailed  = "failed to list decoration maps"
	ErrMsgReadMapFailed     = "failed to read decoration map"
	ErrMsgDecorateFailed    = "failed to decorate html"
	ErrMsgNoMapSource       = "no file system to read decoration maps from"
)

// Log messages
const (
	LogMsgConfigurationLoaded = "Decoration configuration loaded"
	LogMsgMapLineSkipped      = "Skipping malformed decoration map line"
)
