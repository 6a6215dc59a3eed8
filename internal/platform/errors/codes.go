package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Definition errors
	CodeDefinitionEmptyID     Code = "DEFINITION_EMPTY_ID"
	CodeDefinitionDuplicateID Code = "DEFINITION_DUPLICATE_ID"
	CodeDefinitionDecode      Code = "DEFINITION_DECODE"
	CodeDefinitionEmptyLevel  Code = "DEFINITION_EMPTY_LEVEL"

	// Session/settlement errors
	CodeSettlementEmptySessionID Code = "SETTLEMENT_EMPTY_SESSION_ID"
	CodeSettlementEmptyLevelID   Code = "SETTLEMENT_EMPTY_LEVEL_ID"
	CodeSessionAlreadySettled    Code = "SESSION_ALREADY_SETTLED"

	// Event log errors
	CodeEventUnknownType Code = "EVENT_UNKNOWN_TYPE"
	CodeEventDecode      Code = "EVENT_DECODE"

	// Storage errors
	CodeNotFound           Code = "NOT_FOUND"
	CodeStoreNotConfigured Code = "STORE_NOT_CONFIGURED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDefinitionEmptyID,
		CodeDefinitionDuplicateID,
		CodeDefinitionEmptyLevel,
		CodeSettlementEmptySessionID,
		CodeSettlementEmptyLevelID,
		CodeEventUnknownType,
		CodeEventDecode:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeSessionAlreadySettled:
		return codes.FailedPrecondition

	// NotFound
	case CodeNotFound:
		return codes.NotFound

	// Internal - corrupted data, misconfiguration
	case CodeDefinitionDecode, CodeStoreNotConfigured:
		return codes.Internal

	default:
		return codes.Internal
	}
}
