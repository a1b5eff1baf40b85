package asyncapi

import "regexp"

// namePattern is the patterned key format required of every name used as a
// key in a root collection or the components registry.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validateName checks a registry or root collection key against the patterned
// key format. entity describes the key for the error message, such as
// "channel name" or "components.messages key".
func validateName(name, entity string) error {
	if !namePattern.MatchString(name) {
		return ErrInvalidName.Wrapf("%s %q must contain only letters, digits, hyphens and underscores", entity, name)
	}
	return nil
}
