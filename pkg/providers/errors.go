package providers

import "fmt"

// ConfigurationError reports an invalid provider configuration: a missing
// required field, a client secret of the wrong shape, a duplicate id within a
// collection, or an unrecognized descriptor type. It is raised synchronously
// at construction time and is not recoverable.
type ConfigurationError struct {
	Provider string
	Field    string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("provider %q: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("provider %q: field %q: %s", e.Provider, e.Field, e.Reason)
}

func missingField(provider, field string) error {
	return &ConfigurationError{Provider: provider, Field: field, Reason: "required field is missing"}
}
