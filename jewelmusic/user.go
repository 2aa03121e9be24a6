package jewelmusic

import (
	"context"
	"io"
	"net/http"

	"github.com/jewelmusic/jewelmusic-go/httpclient"
	"github.com/jewelmusic/jewelmusic-go/validation"
)

// UserService manages the account profile, preferences, and API keys.
type UserService struct {
	client *Client
}

// UpdateProfileParams updates account profile fields.
type UpdateProfileParams struct {
	Name        string            `json:"name,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Website     string            `json:"website,omitempty" validate:"omitempty,url"`
	Location    string            `json:"location,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}

// Preferences are account-level settings.
type Preferences struct {
	Notifications map[string]bool   `json:"notifications,omitempty"`
	UI            map[string]string `json:"ui,omitempty"`
	Privacy       map[string]any    `json:"privacy,omitempty"`
}

// CreateAPIKeyParams describes a new API key.
type CreateAPIKeyParams struct {
	Name           string   `json:"name" validate:"required"`
	Scopes         []string `json:"scopes" validate:"required,min=1"`
	RateLimit      int      `json:"rateLimit,omitempty"`
	IPRestrictions []string `json:"ipRestrictions,omitempty"`
	ExpiresAt      string   `json:"expiresAt,omitempty"`
	Description    string   `json:"description,omitempty"`
}

// UsageParams selects a usage statistics window.
type UsageParams struct {
	Period    string `json:"period,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	GroupBy   string `json:"groupBy,omitempty"`
	APIKeyID  string `json:"apiKeyId,omitempty"`
}

// Usage reports API consumption for a period.
type Usage struct {
	Period    string           `json:"period"`
	Requests  int64            `json:"requests"`
	Limit     int64            `json:"limit,omitempty"`
	Remaining int64            `json:"remaining,omitempty"`
	ByKey     map[string]int64 `json:"byKey,omitempty"`
	ByDay     []AnalyticsPoint `json:"byDay,omitempty"`
}

// Avatar is an uploaded profile picture.
type Avatar struct {
	URL string `json:"url"`
}

// UpdateAPIKeyParams updates API key settings. Zero values are omitted.
type UpdateAPIKeyParams struct {
	Name           string   `json:"name,omitempty"`
	Scopes         []string `json:"scopes,omitempty"`
	RateLimit      int      `json:"rateLimit,omitempty"`
	IPRestrictions []string `json:"ipRestrictions,omitempty"`
	ExpiresAt      string   `json:"expiresAt,omitempty"`
	Description    string   `json:"description,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}

// BillingParams selects what the billing summary includes.
type BillingParams struct {
	IncludeInvoices bool   `json:"includeInvoices,omitempty"`
	InvoiceLimit    int    `json:"invoiceLimit,omitempty"`
	InvoiceStatus   string `json:"invoiceStatus,omitempty"`
}

// Billing is the account's billing summary.
type Billing struct {
	Plan           string            `json:"plan"`
	PaymentMethod  map[string]string `json:"paymentMethod,omitempty"`
	BillingAddress map[string]string `json:"billingAddress,omitempty"`
	TaxID          string            `json:"taxId,omitempty"`
	Company        string            `json:"company,omitempty"`
	Invoices       []Invoice         `json:"invoices,omitempty"`
}

// Invoice is one billing invoice.
type Invoice struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
	Status   string  `json:"status"`
	IssuedAt string  `json:"issuedAt,omitempty"`
	URL      string  `json:"url,omitempty"`
}

// UpdateBillingParams updates billing information.
type UpdateBillingParams struct {
	PaymentMethod  map[string]string `json:"paymentMethod,omitempty"`
	BillingAddress map[string]string `json:"billingAddress,omitempty"`
	TaxID          string            `json:"taxId,omitempty"`
	Company        string            `json:"company,omitempty"`
}

// Limits reports the account's plan limits and current consumption.
type Limits struct {
	Plan   string           `json:"plan,omitempty"`
	Limits map[string]int64 `json:"limits,omitempty"`
	Usage  map[string]int64 `json:"usage,omitempty"`
}

// DeleteAccountParams confirms an account deletion request.
type DeleteAccountParams struct {
	ConfirmEmail string `json:"confirmEmail" validate:"required,email"`
	Reason       string `json:"reason,omitempty"`
	DeleteData   bool   `json:"deleteData,omitempty"`
}

// ExportAccountDataParams configures an account data export.
type ExportAccountDataParams struct {
	Format           string `json:"format,omitempty"`
	IncludeMetadata  bool   `json:"includeMetadata,omitempty"`
	IncludeTracks    bool   `json:"includeTracks,omitempty"`
	IncludeAnalytics bool   `json:"includeAnalytics,omitempty"`
	Email            string `json:"email,omitempty" validate:"omitempty,email"`
}

// Profile returns the account profile.
func (s *UserService) Profile(ctx context.Context) (*UserProfile, error) {
	profile, err := do[UserProfile](ctx, s.client, http.MethodGet, "/user/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates account profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*UserProfile, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	profile, err := do[UserProfile](ctx, s.client, http.MethodPut, "/user/profile", nil, params)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Preferences returns account preferences.
func (s *UserService) Preferences(ctx context.Context) (*Preferences, error) {
	prefs, err := do[Preferences](ctx, s.client, http.MethodGet, "/user/preferences", nil, nil)
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences replaces account preferences.
func (s *UserService) UpdatePreferences(ctx context.Context, prefs Preferences) (*Preferences, error) {
	updated, err := do[Preferences](ctx, s.client, http.MethodPut, "/user/preferences", nil, prefs)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// APIKeys lists the account's API keys. Key material is not included.
func (s *UserService) APIKeys(ctx context.Context) ([]APIKey, error) {
	return do[[]APIKey](ctx, s.client, http.MethodGet, "/user/api-keys", nil, nil)
}

// CreateAPIKey issues a new API key. The response is the only time the
// full key value is returned.
func (s *UserService) CreateAPIKey(ctx context.Context, params CreateAPIKeyParams) (*APIKey, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	key, err := do[APIKey](ctx, s.client, http.MethodPost, "/user/api-keys", nil, params)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// DeleteAPIKey revokes an API key.
func (s *UserService) DeleteAPIKey(ctx context.Context, keyID string) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/user/api-keys/"+keyID, nil, nil)
	return err
}

// RegenerateAPIKey replaces a key's secret, invalidating the old one.
func (s *UserService) RegenerateAPIKey(ctx context.Context, keyID string) (*APIKey, error) {
	key, err := do[APIKey](ctx, s.client, http.MethodPost, "/user/api-keys/"+keyID+"/regenerate", nil, nil)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// UploadAvatar replaces the account's profile picture.
func (s *UserService) UploadAvatar(ctx context.Context, file io.Reader, filename string) (*Avatar, error) {
	if file == nil {
		return nil, &validation.Error{Fields: map[string][]string{"file": {"is required"}}}
	}
	if filename == "" {
		return nil, &validation.Error{Fields: map[string][]string{"filename": {"is required"}}}
	}
	body := httpclient.NewMultipartBody().AddFile("avatar", filename, file)
	avatar, err := do[Avatar](ctx, s.client, http.MethodPost, "/user/avatar", nil, body)
	if err != nil {
		return nil, err
	}
	return &avatar, nil
}

// UpdateAPIKey changes an API key's settings without rotating it.
func (s *UserService) UpdateAPIKey(ctx context.Context, keyID string, params UpdateAPIKeyParams) (*APIKey, error) {
	key, err := do[APIKey](ctx, s.client, http.MethodPut, "/user/api-keys/"+keyID, nil, params)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// Billing returns the account's billing summary.
func (s *UserService) Billing(ctx context.Context, params *BillingParams) (*Billing, error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"invoiceLimit":  pageValue(params.InvoiceLimit),
			"invoiceStatus": params.InvoiceStatus,
		}
		if params.IncludeInvoices {
			query["includeInvoices"] = "true"
		}
	}
	billing, err := do[Billing](ctx, s.client, http.MethodGet, "/user/billing", query, nil)
	if err != nil {
		return nil, err
	}
	return &billing, nil
}

// UpdateBilling updates payment and billing details.
func (s *UserService) UpdateBilling(ctx context.Context, params UpdateBillingParams) (*Billing, error) {
	billing, err := do[Billing](ctx, s.client, http.MethodPut, "/user/billing", nil, params)
	if err != nil {
		return nil, err
	}
	return &billing, nil
}

// DownloadInvoice downloads an invoice document in the given format.
func (s *UserService) DownloadInvoice(ctx context.Context, invoiceID, format string) (string, error) {
	query := map[string]string{"format": format}
	return do[string](ctx, s.client, http.MethodGet, "/user/billing/invoices/"+invoiceID, query, nil)
}

// Limits reports plan limits and current consumption.
func (s *UserService) Limits(ctx context.Context) (*Limits, error) {
	limits, err := do[Limits](ctx, s.client, http.MethodGet, "/user/limits", nil, nil)
	if err != nil {
		return nil, err
	}
	return &limits, nil
}

// DeleteAccount permanently deletes the account. The email address must
// match the account's email.
func (s *UserService) DeleteAccount(ctx context.Context, params DeleteAccountParams) error {
	if err := validation.Validate(params); err != nil {
		return err
	}
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/user/account", nil, params)
	return err
}

// ExportData starts an export of the account's data.
func (s *UserService) ExportData(ctx context.Context, params *ExportAccountDataParams) (*ExportJob, error) {
	var body any
	if params != nil {
		if err := validation.Validate(*params); err != nil {
			return nil, err
		}
		body = params
	}
	job, err := do[ExportJob](ctx, s.client, http.MethodPost, "/user/export", nil, body)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Usage returns API usage statistics.
func (s *UserService) Usage(ctx context.Context, params *UsageParams) (*Usage, error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"period":    params.Period,
			"startDate": params.StartDate,
			"endDate":   params.EndDate,
			"groupBy":   params.GroupBy,
			"apiKeyId":  params.APIKeyID,
		}
	}
	usage, err := do[Usage](ctx, s.client, http.MethodGet, "/user/usage", query, nil)
	if err != nil {
		return nil, err
	}
	return &usage, nil
}
