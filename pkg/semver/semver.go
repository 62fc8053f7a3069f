package semver

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/constants"
	"mcpkg.io/mcpkg/pkg/errors"
)

// Only dotted numeric versions are accepted, e.g. '1', '1.2' or '1.10.0'.
var dottedNumeric = regexp.MustCompile(`^\d+(\.\d+)*$`)

// Parse parses a dotted numeric version.
func Parse(v string) (*version.Version, error) {
	if !dottedNumeric.MatchString(v) {
		return nil, fmt.Errorf("%w: '%s'", errors.InvalidVersion, v)
	}
	ver, err := version.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", errors.InvalidVersion, v, err)
	}
	return ver, nil
}

// Compare returns -1, 0 or 1 when 'a' is less than, equal to or greater than 'b'.
// An error wrapping errors.InvalidVersion is returned if either version can not be parsed.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// Normalize returns 'v' if it is a valid version, otherwise the lowest possible version '0.0.0'.
func Normalize(v string) string {
	if _, err := Parse(v); err != nil {
		return constants.DefaultPackVersion
	}
	return v
}

// CompareOrLowest compares two versions like Compare,
// but a version that can not be parsed is treated as '0.0.0'.
func CompareOrLowest(a, b string) int {
	na, nb := Normalize(a), Normalize(b)
	if na != a {
		logrus.Debugf("invalid version '%s', using '%s'", a, na)
	}
	if nb != b {
		logrus.Debugf("invalid version '%s', using '%s'", b, nb)
	}
	res, err := Compare(na, nb)
	if err != nil {
		// Both sides are normalized, unreachable.
		return 0
	}
	return res
}

// GreaterThan reports whether 'a' is greater than 'b', invalid versions are the lowest.
func GreaterThan(a, b string) bool {
	return CompareOrLowest(a, b) > 0
}
