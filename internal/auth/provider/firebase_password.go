package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/bytedance/sonic"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// TokenVerifier is satisfied by *auth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebasePassword signs in with email and password through the Identity
// Toolkit REST API and verifies the returned ID token with the Admin SDK.
type FirebasePassword struct {
	apiKey     string
	endpoint   string
	adminEmail string
	verifier   TokenVerifier
	httpClient *http.Client
}

func NewFirebasePassword(apiKey, adminEmail string, verifier TokenVerifier) *FirebasePassword {
	return &FirebasePassword{
		apiKey:     apiKey,
		endpoint:   identityToolkitURL,
		adminEmail: adminEmail,
		verifier:   verifier,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithEndpoint points the client at another Identity Toolkit host, such as
// the auth emulator.
func (p *FirebasePassword) WithEndpoint(endpoint string) *FirebasePassword {
	p.endpoint = endpoint
	return p
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken   string `json:"idToken"`
	Email     string `json:"email"`
	LocalID   string `json:"localId"`
	ExpiresIn string `json:"expiresIn"`
}

type identityError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebasePassword) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	jsonData, err := sonic.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", p.endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call identity toolkit: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ie identityError
		if sonic.Unmarshal(body, &ie) == nil && ie.Error.Message != "" {
			if resp.StatusCode == http.StatusBadRequest {
				return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, ie.Error.Message)
			}
			return nil, fmt.Errorf("identity toolkit returned status %d: %s", resp.StatusCode, ie.Error.Message)
		}
		return nil, fmt.Errorf("identity toolkit returned status %d: %s", resp.StatusCode, string(body))
	}

	var out signInResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	token, err := p.verifier.VerifyIDToken(ctx, out.IDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	verifiedEmail := out.Email
	if claim, ok := token.Claims["email"].(string); ok && claim != "" {
		verifiedEmail = claim
	}
	if p.adminEmail != "" && !strings.EqualFold(verifiedEmail, p.adminEmail) {
		return nil, fmt.Errorf("%w: %s is not the admin account", domain.ErrInvalidCredentials, verifiedEmail)
	}

	identity := &domain.Identity{UID: token.UID, Email: verifiedEmail}
	if secs, err := strconv.Atoi(out.ExpiresIn); err == nil && secs > 0 {
		identity.Lifetime = time.Duration(secs) * time.Second
	}
	return identity, nil
}
