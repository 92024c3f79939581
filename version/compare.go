package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// semver is a parsed MAJOR.MINOR.PATCH[-PRERELEASE] string. Build metadata after "+" is ignored.
type semver struct {
	core       [3]int
	prerelease string
}

func parseSemver(s string) (semver, error) {
	var v semver

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, _, _ = strings.Cut(s, "+")
	s, v.prerelease, _ = strings.Cut(s, "-")

	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return v, fmt.Errorf("malformed version %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("malformed version %q", s)
		}
		v.core[i] = n
	}

	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
// Missing components count as zero and a pre-release sorts before its release.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av.core[:], bv.core[:]) {
		switch {
		case pair.A > pair.B:
			return 1, nil
		case pair.A < pair.B:
			return -1, nil
		}
	}

	switch {
	case av.prerelease == bv.prerelease:
		return 0, nil
	case av.prerelease == "":
		return 1, nil
	case bv.prerelease == "":
		return -1, nil
	case av.prerelease > bv.prerelease:
		return 1, nil
	default:
		return -1, nil
	}
}
