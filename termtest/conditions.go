package termtest

import (
	"regexp"
	"strings"
)

// Condition defines criteria for validating output relative to a Snapshot.
type Condition func(outputSinceSnapshot string) bool

// All creates a Condition that requires all given Conditions to be true.
func All(conds ...Condition) Condition {
	return func(outputSinceSnapshot string) bool {
		for _, cond := range conds {
			if !cond(outputSinceSnapshot) {
				return false
			}
		}
		return true
	}
}

// Any creates a Condition that requires at least one of the given Conditions to be true.
func Any(conds ...Condition) Condition {
	return func(outputSinceSnapshot string) bool {
		for _, cond := range conds {
			if cond(outputSinceSnapshot) {
				return true
			}
		}
		return false
	}
}

// Not creates a Condition that negates the given Condition.
func Not(cond Condition) Condition {
	return func(outputSinceSnapshot string) bool {
		return !cond(outputSinceSnapshot)
	}
}

// Contains checks the output for substr, first as-is, then with escape
// sequences and carriage returns stripped, and finally with runs of
// whitespace collapsed on both sides.
func Contains(substr string) Condition {
	return func(outputSinceSnapshot string) bool {
		if strings.Contains(outputSinceSnapshot, substr) {
			return true
		}
		norm := normalizeTTYOutput(outputSinceSnapshot)
		if strings.Contains(norm, substr) {
			return true
		}
		return strings.Contains(collapseWhitespace(norm), collapseWhitespace(substr))
	}
}

// ContainsRaw checks the raw output for substr, e.g. a specific escape
// sequence.
func ContainsRaw(substr string) Condition {
	return func(outputSinceSnapshot string) bool {
		return strings.Contains(outputSinceSnapshot, substr)
	}
}

// Matches checks the normalized output against re.
func Matches(re *regexp.Regexp) Condition {
	return func(outputSinceSnapshot string) bool {
		return re.MatchString(normalizeTTYOutput(outputSinceSnapshot))
	}
}

// CountRaw is satisfied once substr occurs at least n times in the raw output.
func CountRaw(substr string, n int) Condition {
	return func(outputSinceSnapshot string) bool {
		return strings.Count(outputSinceSnapshot, substr) >= n
	}
}

// normalizeTTYOutput removes escape sequences and carriage returns from a
// capture. Incomplete sequences at the end are dropped.
func normalizeTTYOutput(s string) string {
	if !strings.ContainsAny(s, "\x1b\r") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\r' {
			continue
		}
		if c != 0x1b {
			b.WriteByte(c)
			continue
		}

		if i+1 >= len(s) {
			break
		}

		switch s[i+1] {
		case '[': // CSI, ends with a byte in 0x40-0x7e
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
		case ']', '_', 'P', '^': // OSC, APC, DCS, PM: terminated by BEL or ST
			i += 2
			for i < len(s) {
				if s[i] == 0x07 && s[i-1] != 0x1b {
					break
				}
				if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
					i++
					break
				}
				i++
			}
		case '(', ')', '*', '+': // charset designation, ESC ( C
			i += 2
		default: // two byte sequences, e.g. ESC 7
			i++
		}
	}

	return b.String()
}

// collapseWhitespace reduces all contiguous whitespace to a single space.
func collapseWhitespace(s string) string {
	if !strings.ContainsAny(s, "\t\n\r ") && !strings.Contains(s, "  ") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
