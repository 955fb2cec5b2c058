package reconcile

import (
	"regexp"
	"strings"
)

// versionPattern captures the last digit run that follows a non-digit.
var versionPattern = regexp.MustCompile(`^.*\D(\d+)`)

// VersionNumber is a non-negative decimal version of any length, held as
// its digits without leading zeros. Build numbers such as
// 20260101000000000000 exceed every fixed-width integer.
type VersionNumber string

// NoVersion ranks below every parsed version except an explicit 0.
const NoVersion VersionNumber = "0"

// Version extracts the numeric version embedded in a versioned identifier,
// e.g. 19 for "hg19". Identifiers without a digit run preceded by a
// non-digit rank as NoVersion.
func Version(id string) VersionNumber {
	m := versionPattern.FindStringSubmatch(id)
	if m == nil {
		return NoVersion
	}
	return ParseVersionNumber(m[1])
}

// ParseVersionNumber normalizes a digit run. Anything that is not a
// non-empty run of ASCII digits yields NoVersion.
func ParseVersionNumber(digits string) VersionNumber {
	if digits == "" {
		return NoVersion
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return NoVersion
		}
	}
	if trimmed := strings.TrimLeft(digits, "0"); trimmed != "" {
		return VersionNumber(trimmed)
	}
	return NoVersion
}

// Compare returns -1, 0 or +1 as v is less than, equal to or greater than o.
func (v VersionNumber) Compare(o VersionNumber) int {
	v, o = v.normalized(), o.normalized()
	switch {
	case len(v) != len(o):
		if len(v) < len(o) {
			return -1
		}
		return 1
	default:
		return strings.Compare(string(v), string(o))
	}
}

// Greater reports whether v is strictly greater than o.
func (v VersionNumber) Greater(o VersionNumber) bool {
	return v.Compare(o) > 0
}

// String returns the decimal digits.
func (v VersionNumber) String() string {
	return string(v.normalized())
}

// MarshalJSON emits the version as a bare JSON number.
func (v VersionNumber) MarshalJSON() ([]byte, error) {
	return []byte(v.normalized()), nil
}

// MarshalYAML emits the version as a plain YAML integer.
func (v VersionNumber) MarshalYAML() ([]byte, error) {
	return []byte(v.normalized()), nil
}

// normalized guards against hand-built values such as "" or "007".
func (v VersionNumber) normalized() VersionNumber {
	if v == NoVersion {
		return v
	}
	return ParseVersionNumber(string(v))
}
