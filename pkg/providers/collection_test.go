package providers

import "testing"

func testDescriptors(t *testing.T) (Descriptor, Descriptor) {
	t.Helper()
	github, err := GitHub(OAuthOptions{ClientID: "cid", ClientSecret: "secret"})
	if err != nil {
		t.Fatalf("failed to build github descriptor: %v", err)
	}
	google, err := Google(OAuthOptions{ClientID: "cid", ClientSecret: "secret"})
	if err != nil {
		t.Fatalf("failed to build google descriptor: %v", err)
	}
	return github, google
}

func TestCollectionPreservesOrder(t *testing.T) {
	github, google := testDescriptors(t)
	c, err := NewCollection(github, google)
	if err != nil {
		t.Fatalf("failed to assemble collection: %v", err)
	}
	list := c.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(list))
	}
	if list[0].ProviderID() != "github" || list[1].ProviderID() != "google" {
		t.Errorf("call order not preserved: %q, %q", list[0].ProviderID(), list[1].ProviderID())
	}
	if _, ok := c.ByID("google"); !ok {
		t.Error("ByID lookup failed")
	}
}

func TestCollectionRejectsDuplicateIDs(t *testing.T) {
	base := OAuthOptions{ClientID: "cid", ClientSecret: "secret", Scope: "openid"}

	first, err := IdentityServer4(IdentityServer4Options{
		ID:            "custom",
		DomainOptions: DomainOptions{OAuthOptions: base, Domain: "a.example.com"},
	})
	if err != nil {
		t.Fatalf("failed to build first descriptor: %v", err)
	}
	second, err := IdentityServer4(IdentityServer4Options{
		ID:            "custom",
		DomainOptions: DomainOptions{OAuthOptions: base, Domain: "b.example.com"},
	})
	if err != nil {
		t.Fatalf("failed to build second descriptor: %v", err)
	}

	_, err = NewCollection(first, second)
	assertConfigError(t, err, "custom", "id")

	// Distinct ids assemble fine, in call order.
	third, err := IdentityServer4(IdentityServer4Options{
		ID:            "custom-b",
		DomainOptions: DomainOptions{OAuthOptions: base, Domain: "b.example.com"},
	})
	if err != nil {
		t.Fatalf("failed to build third descriptor: %v", err)
	}
	c, err := NewCollection(first, third)
	if err != nil {
		t.Fatalf("distinct ids should assemble: %v", err)
	}
	list := c.List()
	if list[0].ProviderID() != "custom" || list[1].ProviderID() != "custom-b" {
		t.Errorf("unexpected order: %q, %q", list[0].ProviderID(), list[1].ProviderID())
	}
}

type bogusDescriptor struct{}

func (bogusDescriptor) ProviderID() string   { return "bogus" }
func (bogusDescriptor) ProviderName() string { return "Bogus" }
func (bogusDescriptor) ProviderType() Type   { return Type("saml") }

func TestCollectionRejectsUnknownType(t *testing.T) {
	_, err := NewCollection(bogusDescriptor{})
	assertConfigError(t, err, "bogus", "type")
}

func TestAppProjection(t *testing.T) {
	github, _ := testDescriptors(t)
	c, err := NewCollection(github)
	if err != nil {
		t.Fatalf("failed to assemble collection: %v", err)
	}

	apps := c.AppProviders("https://app.test")
	if len(apps) != 1 {
		t.Fatalf("expected 1 app provider, got %d", len(apps))
	}
	app := apps[0]
	if app.SigninURL != "https://app.test/signin/github" {
		t.Errorf("unexpected signinUrl: %q", app.SigninURL)
	}
	if app.CallbackURL != "https://app.test/callback/github" {
		t.Errorf("unexpected callbackUrl: %q", app.CallbackURL)
	}
	if app.ID != "github" || app.Name != "GitHub" || app.Type != TypeOAuth {
		t.Errorf("unexpected projection: %+v", app)
	}

	// Trailing slash on the base URL must not double up.
	apps = c.AppProviders("https://app.test/")
	if apps[0].SigninURL != "https://app.test/signin/github" {
		t.Errorf("trailing slash not handled: %q", apps[0].SigninURL)
	}
}

func TestNarrowingHelpers(t *testing.T) {
	github, _ := testDescriptors(t)
	if _, ok := AsOAuth(github); !ok {
		t.Error("AsOAuth should narrow an oauth descriptor")
	}
	if _, ok := AsEmail(github); ok {
		t.Error("AsEmail must reject an oauth descriptor")
	}
	if _, ok := AsCredentials(github); ok {
		t.Error("AsCredentials must reject an oauth descriptor")
	}
}
