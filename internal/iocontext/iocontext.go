// Package iocontext holds the execution context every service client is built
// with: which account and workspace to target and which credentials the caller
// owns. It is read-only once handed to a client.
package iocontext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katatrina/commerce-clients/internal/util"
)

// Routing headers sent with every call so the platform serves the configured
// workspace of the account.
const (
	AccountHeader   = "X-Vtex-Account"
	WorkspaceHeader = "X-Vtex-Workspace"
)

const (
	DefaultWorkspace   = "master"
	DefaultEnvironment = "vtexcommercestable"
	DefaultUserAgent   = "commerce-clients"
)

var (
	ErrMissingAccount = errors.New("iocontext: account is required when no base URL is set")
	ErrInvalidBaseURL = errors.New("iocontext: base URL must start with http:// or https://")
)

// Context is the explicit replacement for the ambient per-request context of
// the platform runtime.
type Context struct {
	Account     string
	Workspace   string
	Environment string

	// BaseURL overrides the URL derived from Account and Environment.
	BaseURL string

	AuthToken          string
	AdminUserAuthToken string
	StoreUserAuthToken string

	UserAgent string
}

// FromConfig builds a Context out of the loaded application configuration.
func FromConfig(config util.Config) Context {
	return Context{
		Account:            config.Account,
		Workspace:          config.Workspace,
		Environment:        config.Environment,
		BaseURL:            config.BaseURL,
		AuthToken:          config.AuthToken,
		AdminUserAuthToken: config.AdminUserAuthToken,
		StoreUserAuthToken: config.StoreUserAuthToken,
		UserAgent:          config.UserAgent,
	}
}

// WithDefaults returns a copy with every empty optional field filled in.
func (c Context) WithDefaults() Context {
	if c.Workspace == "" {
		c.Workspace = DefaultWorkspace
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}

// Validate checks that the context can be routed somewhere.
func (c Context) Validate() error {
	if c.BaseURL != "" {
		if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
		}
		return nil
	}
	if c.Account == "" {
		return ErrMissingAccount
	}
	return nil
}

// Host returns the base URL all service routes are resolved against.
func (c Context) Host() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}

	c = c.WithDefaults()
	return fmt.Sprintf("https://%s.%s.com.br", c.Account, c.Environment)
}

// RoutingHeaders returns the account and workspace headers of the context.
// An empty account is left out.
func (c Context) RoutingHeaders() map[string]string {
	c = c.WithDefaults()

	headers := map[string]string{WorkspaceHeader: c.Workspace}
	if c.Account != "" {
		headers[AccountHeader] = c.Account
	}
	return headers
}
