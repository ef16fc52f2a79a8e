package bank

import (
	"iter"

	"github.com/smartfin/statement-importer/internal/types"
)

// Rule matches a fixed-size window of consecutive lines against one of a
// format's patterns. Window is the number of lines the rule inspects;
// Match reports the parsed candidate, how many lines it consumed (0 means
// the full window) and whether the window matched.
//
// Match must be idempotent and must not panic on arbitrary input: a rule
// that does not recognize its window simply reports false.
type Rule struct {
	Window int
	Match  func(win []types.RawLine) (types.Candidate, int, bool)
}

// Scan drives a format's rules over the line sequence with a sliding
// window. At each cursor position the rules are tried in order; the first
// match emits its candidate and advances the cursor past the consumed
// lines, a position where no rule matches advances the cursor by one so a
// false start never blocks later data.
//
// The returned sequence is lazy and yields candidates in document order.
func Scan(lines []types.RawLine, rules []Rule) iter.Seq[types.Candidate] {
	return func(yield func(types.Candidate) bool) {
		i := 0
		for i < len(lines) {
			advance := 1
			for _, rule := range rules {
				if i+rule.Window > len(lines) {
					continue
				}
				cand, consumed, ok := matchWindow(rule, lines[i:i+rule.Window])
				if !ok {
					continue
				}
				if consumed <= 0 || consumed > rule.Window {
					consumed = rule.Window
				}
				if !yield(cand) {
					return
				}
				advance = consumed
				break
			}
			i += advance
		}
	}
}

// matchWindow runs a rule, converting a panicking rule into a miss so a
// malformed window can never abort the whole import.
func matchWindow(rule Rule, win []types.RawLine) (cand types.Candidate, consumed int, ok bool) {
	defer func() {
		if recover() != nil {
			cand, consumed, ok = types.Candidate{}, 0, false
		}
	}()
	return rule.Match(win)
}
