package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const countSeparator = ","

// ErrInvalidRule is matched by every *InvalidRuleError
var ErrInvalidRule = errors.New("invalid rule")

// InvalidRuleError names the token that could not be used as a neighbor count
type InvalidRuleError struct {
	Token  string
	Reason string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule token %q: %s", e.Token, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidRule) match any InvalidRuleError
func (e *InvalidRuleError) Is(target error) bool {
	return target == ErrInvalidRule
}

/*
ParseCounts parses comma-separated neighbor counts, e.g. "2, 3".

Whitespace around tokens is trimmed and duplicates are ignored. Blank input yields the empty set.
Any token that is not an integer in [0, 8] fails the whole parse with an *InvalidRuleError.
*/
func ParseCounts(text string) (Counts, error) {
	var c Counts
	if strings.TrimSpace(text) == "" {
		return c, nil
	}
	for _, raw := range strings.Split(text, countSeparator) {
		token := strings.TrimSpace(raw)
		n, err := parseCount(token)
		if err != nil {
			return Counts{}, err
		}
		c[n] = true
	}
	return c, nil
}

// Parse builds a RuleSet from survive and birth text; nothing is returned unless both parse
func Parse(surviveText, birthText string) (RuleSet, error) {
	survive, err := ParseCounts(surviveText)
	if err != nil {
		return RuleSet{}, errors.Wrap(err, "[Parse] survive counts")
	}
	birth, err := ParseCounts(birthText)
	if err != nil {
		return RuleSet{}, errors.Wrap(err, "[Parse] birth counts")
	}
	return RuleSet{Survive: survive, Birth: birth}, nil
}

/*
ParseNotation parses B/S notation such as "B3/S23" or "S23/B3" (case-insensitive).

Each half is a prefix letter followed by single digits in [0, 8]; either half may be empty ("B/S23").
*/
func ParseNotation(notation string) (RuleSet, error) {
	parts := strings.Split(strings.TrimSpace(notation), "/")
	if len(parts) != 2 {
		return RuleSet{}, &InvalidRuleError{Token: notation, Reason: "expected B<digits>/S<digits>"}
	}

	var (
		rs           RuleSet
		seenB, seenS bool
	)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return RuleSet{}, &InvalidRuleError{Token: notation, Reason: "missing B or S section"}
		}
		var target *Counts
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return RuleSet{}, &InvalidRuleError{Token: part, Reason: "duplicate B section"}
			}
			seenB, target = true, &rs.Birth
		case 'S', 's':
			if seenS {
				return RuleSet{}, &InvalidRuleError{Token: part, Reason: "duplicate S section"}
			}
			seenS, target = true, &rs.Survive
		default:
			return RuleSet{}, &InvalidRuleError{Token: part, Reason: "section must start with B or S"}
		}
		for _, r := range part[1:] {
			n, err := parseCount(string(r))
			if err != nil {
				return RuleSet{}, err
			}
			target[n] = true
		}
	}
	return rs, nil
}

func parseCount(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &InvalidRuleError{Token: token, Reason: "not an integer"}
	}
	if n < 0 || n > MaxNeighbors {
		return 0, &InvalidRuleError{Token: token, Reason: fmt.Sprintf("out of range [0,%d]", MaxNeighbors)}
	}
	return n, nil
}
