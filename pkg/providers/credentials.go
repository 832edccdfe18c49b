package providers

// CredentialsOptions configures the local credentials provider. Credentials
// describes the sign-in form fields; Authorize checks submitted values.
type CredentialsOptions struct {
	Name        string
	Credentials map[string]CredentialField
	Authorize   AuthorizeFunc
}

// Credentials builds the credentials provider descriptor.
func Credentials(opts CredentialsOptions) (*CredentialsDescriptor, error) {
	if opts.Authorize == nil {
		return nil, missingField("credentials", "authorize")
	}
	if len(opts.Credentials) == 0 {
		return nil, missingField("credentials", "credentials")
	}

	fields := make(map[string]CredentialField, len(opts.Credentials))
	for k, v := range opts.Credentials {
		fields[k] = v
	}

	return &CredentialsDescriptor{
		ID:          "credentials",
		Name:        pick(opts.Name, "Credentials"),
		Credentials: fields,
		Authorize:   opts.Authorize,
	}, nil
}
