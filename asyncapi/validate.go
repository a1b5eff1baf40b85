package asyncapi

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

func validateURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return err
	}

	if u.Scheme == "" {
		return fmt.Errorf("%q is not an absolute URL", value)
	}

	return nil
}

// emailPattern rejects consecutive dots in the local part.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateEmail(value string) error {
	if strings.Contains(value, "..") || !emailPattern.MatchString(value) {
		return fmt.Errorf("%q is not a valid email address", value)
	}
	return nil
}

// parseVersion parses a major.minor.patch version string.
func parseVersion(version string) (major, minor, patch int, err error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("version %q must be in the format major.minor.patch", version)
	}

	numbers := make([]int, 3)
	for i, part := range parts {
		numbers[i], err = strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("version %q must be in the format major.minor.patch", version)
		}
	}

	return numbers[0], numbers[1], numbers[2], nil
}
