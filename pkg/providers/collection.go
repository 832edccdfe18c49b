package providers

import (
	"fmt"
	"strings"
)

// Collection is the ordered set of descriptors handed to the surrounding
// framework. Construction is all or nothing: a duplicate id or an
// unrecognized descriptor type fails the whole call.
type Collection struct {
	descriptors []Descriptor
	byID        map[string]Descriptor
}

// NewCollection assembles descriptors in call order, enforcing id uniqueness.
func NewCollection(descriptors ...Descriptor) (*Collection, error) {
	c := &Collection{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		byID:        make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if d == nil {
			return nil, &ConfigurationError{Provider: "", Reason: "nil descriptor in collection"}
		}
		switch d.ProviderType() {
		case TypeOAuth, TypeEmail, TypeCredentials:
		default:
			return nil, &ConfigurationError{
				Provider: d.ProviderID(),
				Field:    "type",
				Reason:   fmt.Sprintf("unrecognized provider type %q", d.ProviderType()),
			}
		}
		id := d.ProviderID()
		if _, exists := c.byID[id]; exists {
			return nil, &ConfigurationError{
				Provider: id,
				Field:    "id",
				Reason:   "duplicate provider id in collection",
			}
		}
		c.byID[id] = d
		c.descriptors = append(c.descriptors, d)
	}
	return c, nil
}

// List returns the descriptors in the order they were assembled.
func (c *Collection) List() []Descriptor {
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// ByID looks up a descriptor by its id.
func (c *Collection) ByID(id string) (Descriptor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Len returns the number of descriptors.
func (c *Collection) Len() int { return len(c.descriptors) }

// AppProvider is the secret-free projection of a descriptor, safe to expose
// to client-side renderers.
type AppProvider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	SigninURL   string `json:"signinUrl"`
	CallbackURL string `json:"callbackUrl"`
}

// AppProviders derives the app-facing view of every descriptor, preserving
// assembly order.
func (c *Collection) AppProviders(baseURL string) []AppProvider {
	out := make([]AppProvider, 0, len(c.descriptors))
	for _, d := range c.descriptors {
		out = append(out, AppProvider{
			ID:          d.ProviderID(),
			Name:        d.ProviderName(),
			Type:        d.ProviderType(),
			SigninURL:   SigninURL(baseURL, d.ProviderID()),
			CallbackURL: CallbackURL(baseURL, d.ProviderID()),
		})
	}
	return out
}

// SigninURL builds the sign-in endpoint for a provider id under a base URL.
func SigninURL(baseURL, id string) string {
	return joinURL(baseURL, "signin", id)
}

// CallbackURL builds the callback endpoint for a provider id under a base URL.
func CallbackURL(baseURL, id string) string {
	return joinURL(baseURL, "callback", id)
}

func joinURL(baseURL string, parts ...string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.Join(parts, "/")
}
