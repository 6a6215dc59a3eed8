package objective

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
)

// Template tokens are delimited by double braces and split on pipes:
// {{maxLosses}} substitutes a parameter, {{plural|maxLosses|casualty|casualties}}
// picks a word form. Expansion runs in passes so tokens may nest; the
// pass cap bounds the recursive grammar and is a compatibility-relevant
// constant, not a tuning knob.
const (
	tokenOpen  = "{{"
	tokenClose = "}}"
	tokenSep   = "|"

	maxTemplatePasses = 5
)

// Template commands. Any other leading segment is treated as a bare
// parameter name.
const (
	cmdPlural       = "plural"
	cmdPluralSuffix = "pluralsuffix"
	cmdZero         = "zero"
	cmdOne          = "one"
)

const defaultPluralSuffix = "s"

// RenderTemplate expands the template's tokens against the parameter
// mapping. Tokens that cannot be resolved are left unchanged.
func RenderTemplate(template string, params Params) string {
	out := template
	for pass := 0; pass < maxTemplatePasses; pass++ {
		if !strings.Contains(out, tokenOpen) {
			break
		}
		expanded, changed := expandOnce(out, params)
		out = expanded
		if !changed {
			break
		}
	}
	return out
}

// HasTokens reports whether the string still contains template tokens.
func HasTokens(s string) bool {
	return strings.Contains(s, tokenOpen) && strings.Contains(s, tokenClose)
}

// expandOnce resolves every innermost token in one left-to-right sweep.
// Outer tokens around a freshly substituted value resolve on the next
// pass.
func expandOnce(s string, params Params) (string, bool) {
	var out strings.Builder
	rest := s
	changed := false

	for {
		end := strings.Index(rest, tokenClose)
		if end < 0 {
			out.WriteString(rest)
			break
		}
		start := strings.LastIndex(rest[:end], tokenOpen)
		if start < 0 {
			// Stray closer, pass it through.
			out.WriteString(rest[:end+len(tokenClose)])
			rest = rest[end+len(tokenClose):]
			continue
		}

		content := rest[start+len(tokenOpen) : end]
		if resolved, ok := resolveToken(content, params); ok {
			out.WriteString(rest[:start])
			out.WriteString(resolved)
			changed = true
		} else {
			out.WriteString(rest[:end+len(tokenClose)])
		}
		rest = rest[end+len(tokenClose):]
	}

	return out.String(), changed
}

// resolveToken resolves one token's content. The second return is false
// when the parameter is missing or of the wrong type, in which case the
// token is left in place.
func resolveToken(content string, params Params) (string, bool) {
	parts := strings.Split(content, tokenSep)

	switch parts[0] {
	case cmdPlural:
		// plural|param|singular|plural[|zero]
		if len(parts) < 4 {
			return "", false
		}
		value, ok := params.Int(parts[1])
		if !ok {
			return "", false
		}
		if value == 0 && len(parts) > 4 {
			return parts[4], true
		}
		if value == 1 {
			return parts[2], true
		}
		return parts[3], true

	case cmdPluralSuffix:
		// pluralsuffix|param[|plural suffix[|singular suffix]]
		if len(parts) < 2 {
			return "", false
		}
		value, ok := params.Int(parts[1])
		if !ok {
			return "", false
		}
		plural := defaultPluralSuffix
		singular := ""
		if len(parts) > 2 {
			plural = parts[2]
		}
		if len(parts) > 3 {
			singular = parts[3]
		}
		if value == 1 {
			return singular, true
		}
		return plural, true

	case cmdZero:
		// zero|param|zero text|else text
		if len(parts) < 4 {
			return "", false
		}
		value, ok := params.Int(parts[1])
		if !ok {
			return "", false
		}
		if value == 0 {
			return parts[2], true
		}
		return parts[3], true

	case cmdOne:
		// one|param|one text|else text
		if len(parts) < 4 {
			return "", false
		}
		value, ok := params.Int(parts[1])
		if !ok {
			return "", false
		}
		if value == 1 {
			return parts[2], true
		}
		return parts[3], true

	default:
		if len(parts) != 1 {
			return "", false
		}
		return paramText(params, parts[0])
	}
}

func paramText(params Params, name string) (string, bool) {
	value, ok := params[name]
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// Describe renders an objective's display text for the given state,
// resolving parameters for the session difficulty. When the template
// cannot be fully resolved the engine falls back to the plain authored
// description, then to a synthesized per-kind sentence, then to the
// unresolved string itself. Pending objectives with a non-zero progress
// target get a "(current/target)" suffix.
func Describe(def Definition, state *State, difficulty chess.Difficulty, notifier Notifier) string {
	params := def.Condition.EffectiveParams(difficulty)
	text := describeText(def, params, notifier)

	if state != nil && !state.Terminal() && state.Progress != nil && state.Progress.Target != 0 {
		text = fmt.Sprintf("%s (%d/%d)", text, state.Progress.Current, state.Progress.Target)
	}
	return text
}

func describeText(def Definition, params Params, notifier Notifier) string {
	resolved := RenderTemplate(def.Description, params)
	if !HasTokens(resolved) {
		return resolved
	}

	notify(notifier, Notice{
		Code:     NoticeUnresolvedTemplate,
		Message:  fmt.Sprintf("description for %s has unresolved tokens", def.ID),
		Metadata: map[string]string{"ObjectiveID": def.ID, "Resolved": resolved},
	})

	if def.PlainDescription != "" && !HasTokens(def.PlainDescription) {
		return def.PlainDescription
	}
	if fallback, ok := fallbackDescription(def.Condition.Kind, params); ok {
		return fallback
	}
	return resolved
}

// fallbackDescription synthesizes a sentence for kinds whose parameters
// allow natural phrasing.
func fallbackDescription(kind ConditionKind, params Params) (string, bool) {
	switch kind {
	case KindMaxCasualties:
		limit, ok := params.Int(ParamMaxLosses)
		if !ok {
			return "", false
		}
		if limit == 0 {
			return "Win without losing any pieces", true
		}
		return fmt.Sprintf("Win while losing no more than %d %s", limit, pluralWord(limit, "piece", "pieces")), true

	case KindDontKillCourtiers:
		limit, ok := params.Int(ParamMaxCourtiers)
		if !ok {
			return "", false
		}
		if limit == 0 {
			return "Win without destroying any courtiers", true
		}
		return fmt.Sprintf("Destroy no more than %d %s", limit, pluralWord(limit, "courtier", "courtiers")), true

	case KindWinUnderTurns:
		limit, ok := params.Int(ParamMaxTurns)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Win within %d %s", limit, pluralWord(limit, "turn", "turns")), true

	default:
		return "", false
	}
}

func pluralWord(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
