package providers

// DefaultEmailTokenMaxAge is the verification token validity window applied
// when the caller does not set one: 24 hours, in seconds.
const DefaultEmailTokenMaxAge = 24 * 60 * 60

// EmailOptions configures the magic-link email provider. Exactly one of
// Server (connection string) or SMTP (structured) describes the mail server.
// SendVerificationRequest has no default; the caller must supply it because
// this layer never sends mail itself.
type EmailOptions struct {
	Name                    string
	Server                  string
	SMTP                    *SMTPServer
	From                    string
	MaxAge                  int
	SendVerificationRequest SendVerificationFunc
}

// Email builds the email provider descriptor.
func Email(opts EmailOptions) (*EmailDescriptor, error) {
	if opts.SendVerificationRequest == nil {
		return nil, missingField("email", "sendVerificationRequest")
	}
	// A structured server without a sender address would leave the sender
	// callback with no usable envelope.
	if opts.SMTP != nil && opts.From == "" {
		return nil, missingField("email", "from")
	}

	maxAge := opts.MaxAge
	if maxAge == 0 {
		maxAge = DefaultEmailTokenMaxAge
	}

	return &EmailDescriptor{
		ID:                      "email",
		Name:                    pick(opts.Name, "Email"),
		Server:                  opts.Server,
		SMTP:                    opts.SMTP,
		From:                    opts.From,
		MaxAge:                  maxAge,
		SendVerificationRequest: opts.SendVerificationRequest,
	}, nil
}
