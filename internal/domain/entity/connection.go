package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExternalProvider identifies an OAuth provider a user can link for data access.
type ExternalProvider string

const (
	ExternalProviderGoogle    ExternalProvider = "google"
	ExternalProviderMicrosoft ExternalProvider = "microsoft"
)

// ParseExternalProvider validates a provider name from the URL path.
func ParseExternalProvider(raw string) (ExternalProvider, bool) {
	switch ExternalProvider(raw) {
	case ExternalProviderGoogle, ExternalProviderMicrosoft:
		return ExternalProvider(raw), true
	default:
		return "", false
	}
}

// ServiceType identifies one concrete data service behind a provider.
// A single consent grants both of a provider's services at once.
type ServiceType string

const (
	ServiceGmail           ServiceType = "gmail"
	ServiceOutlookMail     ServiceType = "outlook_mail"
	ServiceGoogleCalendar  ServiceType = "google_calendar"
	ServiceOutlookCalendar ServiceType = "outlook_calendar"
)

// ParseServiceType validates a service name from the URL path.
func ParseServiceType(raw string) (ServiceType, bool) {
	switch ServiceType(raw) {
	case ServiceGmail, ServiceOutlookMail, ServiceGoogleCalendar, ServiceOutlookCalendar:
		return ServiceType(raw), true
	default:
		return "", false
	}
}

// ServicesForProvider returns the services granted by one provider consent,
// mail first.
func ServicesForProvider(provider ExternalProvider) []ServiceType {
	switch provider {
	case ExternalProviderGoogle:
		return []ServiceType{ServiceGmail, ServiceGoogleCalendar}
	case ExternalProviderMicrosoft:
		return []ServiceType{ServiceOutlookMail, ServiceOutlookCalendar}
	default:
		return nil
	}
}

// PairedService returns the sibling service that shares the same consent
// (mail <-> calendar within one provider), or false for an unknown service.
func PairedService(service ServiceType) (ServiceType, bool) {
	switch service {
	case ServiceGmail:
		return ServiceGoogleCalendar, true
	case ServiceGoogleCalendar:
		return ServiceGmail, true
	case ServiceOutlookMail:
		return ServiceOutlookCalendar, true
	case ServiceOutlookCalendar:
		return ServiceOutlookMail, true
	default:
		return "", false
	}
}

// ProviderForService maps a service back to the provider whose tokens it uses.
func ProviderForService(service ServiceType) (ExternalProvider, bool) {
	switch service {
	case ServiceGmail, ServiceGoogleCalendar:
		return ExternalProviderGoogle, true
	case ServiceOutlookMail, ServiceOutlookCalendar:
		return ExternalProviderMicrosoft, true
	default:
		return "", false
	}
}

// IsCalendar reports whether the service carries calendar data rather than mail.
func (s ServiceType) IsCalendar() bool {
	return s == ServiceGoogleCalendar || s == ServiceOutlookCalendar
}

// SimulatedAccessToken is the fixed access token stored for simulated
// credentials. Clients may display it; business logic must branch on
// Credential.Simulated instead.
const SimulatedAccessToken = "simulated-access-token"

const simulatedCredentialLifetime = time.Hour

// Credential is the token material of a Connection. The Simulated flag is the
// discriminant: a simulated credential never reaches a real provider and is
// never refreshed.
type Credential struct {
	Simulated    bool
	AccessToken  string
	RefreshToken string    // Empty when the provider withheld one or the credential is simulated.
	ExpiresAt    time.Time // Access token expiry; simulated credentials get a nominal one-hour window.
}

// Expired reports whether the access token lifetime has passed.
func (c Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// NewSimulatedCredential builds the placeholder credential used when a
// provider has no client registration configured.
func NewSimulatedCredential(now time.Time) Credential {
	return Credential{
		Simulated:   true,
		AccessToken: SimulatedAccessToken,
		ExpiresAt:   now.Add(simulatedCredentialLifetime),
	}
}

// Connection represents one authorised link between a user and one external
// data service. A user holds at most one Connection per service.
type Connection struct {
	ID           uuid.UUID   // The unique ID for this connection record.
	UserID       uuid.UUID   // Links this connection to the User it belongs to.
	Service      ServiceType // The concrete data service this connection grants access to.
	AccountEmail string      // The email address of the linked external account.
	Credential   Credential  // Token material, decrypted at the repository boundary.
	CreatedAt    time.Time   // Timestamp of when this service was first connected.
	UpdatedAt    time.Time   // Timestamp of the last token refresh or re-consent.
}
