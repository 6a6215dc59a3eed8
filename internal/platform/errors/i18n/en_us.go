package i18n

// Error codes must match the codes defined in platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDefinitionEmptyID        = "DEFINITION_EMPTY_ID"
	CodeDefinitionDuplicateID    = "DEFINITION_DUPLICATE_ID"
	CodeDefinitionDecode         = "DEFINITION_DECODE"
	CodeDefinitionEmptyLevel     = "DEFINITION_EMPTY_LEVEL"
	CodeSettlementEmptySessionID = "SETTLEMENT_EMPTY_SESSION_ID"
	CodeSettlementEmptyLevelID   = "SETTLEMENT_EMPTY_LEVEL_ID"
	CodeSessionAlreadySettled    = "SESSION_ALREADY_SETTLED"
	CodeEventUnknownType         = "EVENT_UNKNOWN_TYPE"
	CodeEventDecode              = "EVENT_DECODE"
	CodeNotFound                 = "NOT_FOUND"
	CodeStoreNotConfigured       = "STORE_NOT_CONFIGURED"
)

var enUSCatalog = NewCatalog(BaseLocale, map[Code]string{
	// Definition errors
	CodeDefinitionEmptyID:     "Objective definition is missing an identifier",
	CodeDefinitionDuplicateID: "Objective {{.ObjectiveID}} is defined more than once",
	CodeDefinitionDecode:      "Objective definition for {{.ObjectiveID}} could not be decoded",
	CodeDefinitionEmptyLevel:  "Level identifier is required",

	// Session/settlement errors
	CodeSettlementEmptySessionID: "Session identifier is required for settlement",
	CodeSettlementEmptyLevelID:   "Level identifier is required for settlement",
	CodeSessionAlreadySettled:    "Session {{.SessionID}} has already been settled",

	// Event log errors
	CodeEventUnknownType: "Unknown session event type: {{.Type}}",
	CodeEventDecode:      "Session event log could not be decoded",

	// Storage errors
	CodeNotFound:           "The requested resource was not found",
	CodeStoreNotConfigured: "Storage is not configured",
})
