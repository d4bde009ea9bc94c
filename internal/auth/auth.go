// Package auth resolves which stored credential an outbound call presents.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katatrina/commerce-clients/internal/iocontext"
)

// CookieHeader is the header the platform reads the session credential from.
const CookieHeader = "VtexIdclientAutCookie"

var ErrUnknownAuthMethod = errors.New("unknown auth method")

// Method names a credential stored in the execution context.
// New schemes are added as new constants.
type Method string

const (
	MethodAuthToken  Method = "AUTH_TOKEN"
	MethodAdminToken Method = "ADMIN_TOKEN"
	MethodStoreToken Method = "STORE_TOKEN"
)

// DefaultMethod is used whenever a caller leaves the method empty.
const DefaultMethod = MethodAuthToken

var methods = []Method{MethodAuthToken, MethodAdminToken, MethodStoreToken}

// Methods lists every supported method.
func Methods() []Method {
	return append([]Method(nil), methods...)
}

func (m Method) Valid() bool {
	for _, known := range methods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

// ParseMethod accepts the wire name of a method, case-insensitively.
// An empty string yields DefaultMethod.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return DefaultMethod, nil
	}

	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAuthMethod, s)
	}
	return m, nil
}

// Resolve returns the credential stored in ctx for method.
// It reports false when nothing is configured, including for unknown methods.
func Resolve(ctx *iocontext.Context, method Method) (string, bool) {
	if ctx == nil {
		return "", false
	}

	var token string
	switch method {
	case MethodAuthToken:
		token = ctx.AuthToken
	case MethodAdminToken:
		token = ctx.AdminUserAuthToken
	case MethodStoreToken:
		token = ctx.StoreUserAuthToken
	}

	if token == "" {
		return "", false
	}
	return token, true
}

// Headers builds the authentication headers of a call. The map is empty when
// no credential is available so anonymous calls against public routes still work.
func Headers(ctx *iocontext.Context, method Method) map[string]string {
	token, ok := Resolve(ctx, method)
	if !ok {
		return map[string]string{}
	}

	return map[string]string{
		CookieHeader: token,
	}
}
