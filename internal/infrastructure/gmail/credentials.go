package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iamcredentials/v1"
	"google.golang.org/api/option"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

const (
	tokenEndpoint      = "https://oauth2.googleapis.com/token"
	jwtBearerGrant     = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	assertionLifetime = time.Hour
)

// DelegatedIdentity names the service account that signs assertions and
// the mailbox user it impersonates. Constructed once per configuration
// load and never mutated.
type DelegatedIdentity struct {
	ServiceAccount string
	User           string
	Scopes         []string
}

type assertionClaims struct {
	Issuer    string `json:"iss"`
	Subject   string `json:"sub"`
	Scope     string `json:"scope"`
	Audience  string `json:"aud"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// assertionSigner signs a serialized claim set with a key the workload
// does not hold locally.
type assertionSigner interface {
	SignAssertion(ctx context.Context, serviceAccount string, payload []byte) (string, error)
}

// iamSigner signs through the IAM Credentials API using the ambient
// credential of the running workload.
type iamSigner struct{}

func (iamSigner) SignAssertion(ctx context.Context, serviceAccount string, payload []byte) (string, error) {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return "", fmt.Errorf("ambient credentials: %w", err)
	}
	svc, err := iamcredentials.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return "", fmt.Errorf("iamcredentials client: %w", err)
	}
	name := "projects/-/serviceAccounts/" + serviceAccount
	resp, err := svc.Projects.ServiceAccounts.SignJwt(name, &iamcredentials.SignJwtRequest{
		Payload: string(payload),
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return resp.SignedJwt, nil
}

// TokenExchanger turns a DelegatedIdentity into a user-impersonating
// access token: sign a one-hour assertion through the IAM Credentials
// API, then trade it for a bearer token at the OAuth token endpoint.
// Every call performs a fresh two-round-trip exchange; callers cache the
// transport handle built from the token, not the token itself.
type TokenExchanger struct {
	signer     assertionSigner
	httpClient *http.Client
	tokenURL   string
	now        func() time.Time
}

func NewTokenExchanger() *TokenExchanger {
	return &TokenExchanger{
		signer:     iamSigner{},
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokenURL:   tokenEndpoint,
		now:        time.Now,
	}
}

// DelegatedToken acquires a bearer token impersonating identity.User.
// No retry happens at this layer.
func (e *TokenExchanger) DelegatedToken(ctx context.Context, identity DelegatedIdentity) (string, error) {
	now := e.now()
	claims := assertionClaims{
		Issuer:    identity.ServiceAccount,
		Subject:   identity.User,
		Scope:     strings.Join(identity.Scopes, " "),
		Audience:  e.tokenURL,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(assertionLifetime).Unix(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", &domain.CredentialError{Kind: domain.SigningFailed, User: identity.User, Err: err}
	}

	signed, err := e.signer.SignAssertion(ctx, identity.ServiceAccount, payload)
	if err != nil {
		return "", &domain.CredentialError{Kind: domain.SigningFailed, User: identity.User, Err: err}
	}

	form := url.Values{
		"grant_type": {jwtBearerGrant},
		"assertion":  {signed},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &domain.CredentialError{Kind: domain.ExchangeFailed, User: identity.User, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", &domain.CredentialError{Kind: domain.ExchangeFailed, User: identity.User, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return "", &domain.CredentialError{
			Kind: domain.ExchangeFailed,
			User: identity.User,
			Err:  fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, body),
		}
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return "", &domain.CredentialError{Kind: domain.ExchangeFailed, User: identity.User, Err: err}
	}
	if token.AccessToken == "" {
		return "", &domain.CredentialError{
			Kind: domain.ExchangeFailed,
			User: identity.User,
			Err:  fmt.Errorf("token endpoint returned no access_token"),
		}
	}

	log.WithField("delegated_user", identity.User).Debug("Delegated token acquired")
	return token.AccessToken, nil
}
