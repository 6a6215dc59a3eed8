package objective

// Diagnostic notice codes surfaced to the host for observability.
const (
	NoticeUnknownConditionKind = "OBJECTIVE_UNKNOWN_CONDITION_KIND"
	NoticeCustomCondition      = "OBJECTIVE_CUSTOM_CONDITION"
	NoticeUnresolvedTemplate   = "OBJECTIVE_UNRESOLVED_TEMPLATE"
)

// Notice is a diagnostic event emitted during evaluation or rendering.
// Notices are observability signals, never failures: the engine always
// returns a well-formed result alongside them.
type Notice struct {
	Code     string
	Message  string
	Metadata map[string]string
}

// Notifier receives diagnostic notices. A nil Notifier is valid and
// silently drops them.
type Notifier interface {
	Notice(n Notice)
}

func notify(notifier Notifier, n Notice) {
	if notifier == nil {
		return
	}
	notifier.Notice(n)
}
