// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

// ClaimPolicy turns a verified payload into Claims and applies the
// operator's email domain rules.
type ClaimPolicy struct {
	allowed []string
	denied  []string

	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *ClaimPolicy) Evaluate(ctx context.Context, raw RawClaims) (*Claims, error) {
	_, span := p.tracer.Start(ctx, "sso.ClaimPolicy.Evaluate")
	defer span.End()

	claims := new(Claims)

	var err error
	if claims.Username, err = requiredString(raw, "username"); err != nil {
		return nil, err
	}

	if claims.Email, err = requiredString(raw, "email"); err != nil {
		return nil, err
	}

	optional := []struct {
		name string
		dst  interface{}
	}{
		{"firstname", &claims.FirstName},
		{"lastname", &claims.LastName},
		{"external_id", &claims.ExternalID},
		{"cohort", &claims.Cohorts},
	}

	for _, o := range optional {
		if err := decodeClaim(raw, o.name, o.dst); err != nil {
			return nil, err
		}
	}

	if err := p.validate(claims); err != nil {
		return nil, err
	}

	if !p.domainAllowed(claims.Email) {
		return nil, fmt.Errorf("%w: %s", ErrForbiddenDomain, emailDomain(claims.Email))
	}

	return claims, nil
}

func (p *ClaimPolicy) validate(claims *Claims) error {
	err := p.validator.Struct(claims)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return &MissingClaimError{Name: fe.Field()}
	}

	return &InvalidClaimError{Name: fe.Field(), Reason: fmt.Sprintf("failed %q validation", fe.Tag())}
}

// domainAllowed applies the allowlist first, then the denylist.
func (p *ClaimPolicy) domainAllowed(email string) bool {
	if len(p.allowed) > 0 && !matchesAnyDomain(email, p.allowed) {
		return false
	}

	return !matchesAnyDomain(email, p.denied)
}

func matchesAnyDomain(email string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesDomain(email, pattern) {
			return true
		}
	}
	return false
}

// matchesDomain compares case-insensitively. A pattern with a leading dot
// matches subdomains only.
func matchesDomain(email, pattern string) bool {
	domain := emailDomain(email)
	pattern = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(pattern), "@"))

	if domain == "" || pattern == "" || pattern == "." {
		return false
	}

	if strings.HasPrefix(pattern, ".") {
		return strings.HasSuffix(domain, pattern)
	}

	return domain == pattern
}

func emailDomain(email string) string {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return ""
	}
	return strings.ToLower(email[i+1:])
}

func requiredString(raw RawClaims, name string) (string, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return "", &MissingClaimError{Name: name}
	}

	s, ok := v.(string)
	if !ok {
		return "", &InvalidClaimError{Name: name, Reason: fmt.Sprintf("expected a string, got %T", v)}
	}

	if strings.TrimSpace(s) == "" {
		return "", &MissingClaimError{Name: name}
	}

	return s, nil
}

func decodeClaim(raw RawClaims, name string, dst interface{}) error {
	v, ok := raw[name]
	if !ok || v == nil {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return &InvalidClaimError{Name: name, Reason: err.Error()}
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return &InvalidClaimError{Name: name, Reason: err.Error()}
	}

	return nil
}

func newClaimsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json claim names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func NewClaimPolicy(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ClaimPolicy {
	p := new(ClaimPolicy)

	p.allowed = cleanDomains(config.AllowedEmailDomains)
	p.denied = cleanDomains(config.DeniedEmailDomains)
	p.validator = newClaimsValidator()

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
