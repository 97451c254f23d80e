package nconvert

import (
	"os"

	"github.com/pkg/errors"
)

// DefaultCultureVariables are consulted, in order, by CultureFromEnv
// when no variables are named.
var DefaultCultureVariables = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// CultureFromEnv looks up the culture named by the first of the given
// environment variables that is set and not empty.  With no variables
// set, the result is Invariant.  The caller decides which variables
// count: nothing is read unless CultureFromEnv is called.
func CultureFromEnv(variables ...string) (Culture, error) {
	if len(variables) == 0 {
		variables = DefaultCultureVariables
	}
	for _, variable := range variables {
		value, ok := os.LookupEnv(variable)
		if !ok || value == "" {
			continue
		}
		debug("culture from", variable, ":", value)
		c, err := LookupCulture(value)
		if err != nil {
			return Culture{}, errors.Wrapf(err, "environment variable %s", variable)
		}
		return c, nil
	}
	return Invariant, nil
}
