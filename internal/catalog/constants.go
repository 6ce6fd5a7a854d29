package catalog

// Error context strings
const (
	ErrContextReadPrizes   = "failed to read prize catalog"
	ErrContextParsePrizes  = "failed to parse prize catalog"
	ErrContextReadRoster   = "failed to read roster"
	ErrContextParseRoster  = "failed to parse roster"
	ErrContextSchemaPrizes = "prize catalog does not match schema"
	ErrContextSchemaRoster = "roster does not match schema"
)

// Log messages
const (
	LogMsgCatalogLoaded     = "Prize catalog loaded"
	LogMsgUsingDefaults     = "No path configured, using bundled default"
	LogMsgDuplicatesDropped = "Duplicate participants removed from roster"
	LogMsgEmptyNamesDropped = "Blank participant names removed from roster"
)

// Bundled default file names
const (
	defaultPrizesFile = "defaults/prizes.json"
	defaultRosterFile = "defaults/roster.txt"
)
