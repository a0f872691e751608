package helpers

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Identity is the verified caller identity attached to a request.
type Identity struct {
	Email string
}

// ErrUnauthenticated covers every verification failure uniformly; callers
// are never told whether the token was missing, malformed, or expired.
var ErrUnauthenticated = errors.New("unauthorized access")

// NewFirebaseAuth builds a Firebase auth client from a base64-encoded
// service-account JSON key.
func NewFirebaseAuth(ctx context.Context, serviceKeyB64 string) (*auth.Client, error) {
	raw, err := base64.StdEncoding.DecodeString(serviceKeyB64)
	if err != nil {
		return nil, err
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(raw))
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}

// FirebaseVerifier resolves bearer headers to identities via Firebase.
type FirebaseVerifier struct {
	Auth *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{Auth: client}
}

// Verify takes the raw Authorization header value, extracts the Bearer
// token and verifies it. Returns the email claim on success.
func (v *FirebaseVerifier) Verify(ctx context.Context, authHeader string) (Identity, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return Identity{}, ErrUnauthenticated
	}
	tok, err := v.Auth.VerifyIDToken(ctx, strings.TrimPrefix(authHeader, prefix))
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}
	email, _ := tok.Claims["email"].(string)
	if email == "" {
		return Identity{}, ErrUnauthenticated
	}
	return Identity{Email: email}, nil
}
