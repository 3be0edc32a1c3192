// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func newTestPolicy(t *testing.T, allowed, denied []string) *ClaimPolicy {
	t.Helper()

	c := testConfig(t)
	c.AllowedEmailDomains = allowed
	c.DeniedEmailDomains = denied

	tracer, monitor, logger := noops()
	return NewClaimPolicy(c, tracer, monitor, logger)
}

func TestClaimPolicyBuildsClaims(t *testing.T) {
	p := newTestPolicy(t, nil, nil)

	raw := RawClaims{
		"username":    "jdoe",
		"email":       "jdoe@allowed.com",
		"firstname":   "John",
		"lastname":    "Doe",
		"external_id": json.Number("4711"),
		"cohort":      []interface{}{"C1", json.Number("42")},
		"iat":         json.Number("1700000000"),
	}

	claims, err := p.Evaluate(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.Username != "jdoe" || claims.Email != "jdoe@allowed.com" {
		t.Errorf("unexpected identity claims %+v", claims)
	}

	if claims.FirstName != "John" || claims.LastName != "Doe" {
		t.Errorf("unexpected name claims %+v", claims)
	}

	if claims.ExternalID != ClaimValue("4711") {
		t.Errorf("expected external id 4711, got %q", claims.ExternalID)
	}

	if ids := claims.CohortIDs(); !reflect.DeepEqual(ids, []string{"C1", "42"}) {
		t.Errorf("unexpected cohorts %v", ids)
	}
}

func TestClaimPolicyScalarCohort(t *testing.T) {
	p := newTestPolicy(t, nil, nil)

	claims, err := p.Evaluate(context.Background(), RawClaims{
		"username": "jdoe",
		"email":    "jdoe@allowed.com",
		"cohort":   "C9",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ids := claims.CohortIDs(); !reflect.DeepEqual(ids, []string{"C9"}) {
		t.Errorf("expected a single cohort C9, got %v", ids)
	}
}

func TestClaimPolicyRoundTrip(t *testing.T) {
	p := newTestPolicy(t, nil, nil)

	payload := `{"username":"jdoe","email":"jdoe@allowed.com","firstname":"John","lastname":"Doe","external_id":"E-1","cohort":["C1","C2"]}`

	var raw RawClaims
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := p.Evaluate(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var expected, got map[string]interface{}
	_ = json.Unmarshal([]byte(payload), &expected)
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(expected, got) {
		t.Errorf("expected %s, got %s", payload, out)
	}
}

func TestClaimPolicyCohortIDsIsACopy(t *testing.T) {
	p := newTestPolicy(t, nil, nil)

	claims, err := p.Evaluate(context.Background(), RawClaims{
		"username": "jdoe",
		"email":    "jdoe@allowed.com",
		"cohort":   []interface{}{"C1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := claims.CohortIDs()
	ids[0] = "changed"

	if ids := claims.CohortIDs(); !reflect.DeepEqual(ids, []string{"C1"}) {
		t.Errorf("expected the claims to be unchanged, got %v", ids)
	}
}

func TestClaimPolicyRejections(t *testing.T) {
	tests := []struct {
		name      string
		allowed   []string
		denied    []string
		raw       RawClaims
		expected  error
		claimName string
	}{
		{
			name:      "missing username",
			raw:       RawClaims{"email": "jdoe@allowed.com"},
			expected:  ErrMissingClaim,
			claimName: "username",
		},
		{
			name:      "blank username",
			raw:       RawClaims{"username": "  ", "email": "jdoe@allowed.com"},
			expected:  ErrMissingClaim,
			claimName: "username",
		},
		{
			name:      "null email",
			raw:       RawClaims{"username": "jdoe", "email": nil},
			expected:  ErrMissingClaim,
			claimName: "email",
		},
		{
			name:      "numeric username",
			raw:       RawClaims{"username": json.Number("12"), "email": "jdoe@allowed.com"},
			expected:  ErrInvalidClaim,
			claimName: "username",
		},
		{
			name:      "malformed email",
			raw:       RawClaims{"username": "jdoe", "email": "not-an-email"},
			expected:  ErrInvalidClaim,
			claimName: "email",
		},
		{
			name:      "firstname is an object",
			raw:       RawClaims{"username": "jdoe", "email": "jdoe@allowed.com", "firstname": map[string]interface{}{"a": "b"}},
			expected:  ErrInvalidClaim,
			claimName: "firstname",
		},
		{
			name:      "cohort holds an object",
			raw:       RawClaims{"username": "jdoe", "email": "jdoe@allowed.com", "cohort": []interface{}{"C1", map[string]interface{}{}}},
			expected:  ErrInvalidClaim,
			claimName: "cohort",
		},
		{
			name:     "denied domain",
			denied:   []string{"blocked.com"},
			raw:      RawClaims{"username": "jdoe", "email": "x@blocked.com"},
			expected: ErrForbiddenDomain,
		},
		{
			name:     "denied domain is case insensitive",
			denied:   []string{"Blocked.COM"},
			raw:      RawClaims{"username": "jdoe", "email": "x@BLOCKED.com"},
			expected: ErrForbiddenDomain,
		},
		{
			name:     "denied subdomain",
			denied:   []string{".blocked.com"},
			raw:      RawClaims{"username": "jdoe", "email": "x@mail.blocked.com"},
			expected: ErrForbiddenDomain,
		},
		{
			name:     "not in allowlist",
			allowed:  []string{"allowed.com"},
			raw:      RawClaims{"username": "jdoe", "email": "x@elsewhere.com"},
			expected: ErrForbiddenDomain,
		},
		{
			name:     "allowlist entry is not a suffix match",
			allowed:  []string{"allowed.com"},
			raw:      RawClaims{"username": "jdoe", "email": "x@notallowed.com"},
			expected: ErrForbiddenDomain,
		},
		{
			name:     "denylist wins over allowlist",
			allowed:  []string{"allowed.com"},
			denied:   []string{"allowed.com"},
			raw:      RawClaims{"username": "jdoe", "email": "x@allowed.com"},
			expected: ErrForbiddenDomain,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := newTestPolicy(t, test.allowed, test.denied)

			claims, err := p.Evaluate(context.Background(), test.raw)

			if claims != nil {
				t.Errorf("expected no claims, got %+v", claims)
			}

			if !errors.Is(err, test.expected) {
				t.Fatalf("expected error %v, got %v", test.expected, err)
			}

			if test.claimName == "" {
				return
			}

			var missing *MissingClaimError
			var invalid *InvalidClaimError

			switch {
			case errors.As(err, &missing):
				if missing.Name != test.claimName {
					t.Errorf("expected missing claim %q, got %q", test.claimName, missing.Name)
				}
			case errors.As(err, &invalid):
				if invalid.Name != test.claimName {
					t.Errorf("expected invalid claim %q, got %q", test.claimName, invalid.Name)
				}
			default:
				t.Fatalf("expected a typed claim error, got %T", err)
			}
		})
	}
}

func TestMatchesDomain(t *testing.T) {
	tests := []struct {
		email    string
		pattern  string
		expected bool
	}{
		{"a@example.com", "example.com", true},
		{"a@example.com", "@example.com", true},
		{"a@EXAMPLE.com", "example.COM", true},
		{"a@sub.example.com", "example.com", false},
		{"a@sub.example.com", ".example.com", true},
		{"a@example.com", ".example.com", false},
		{"a@badexample.com", ".example.com", false},
		{"a@example.com", "", false},
		{"no-at-sign", "example.com", false},
	}

	for _, test := range tests {
		t.Run(test.email+"/"+test.pattern, func(t *testing.T) {
			if got := matchesDomain(test.email, test.pattern); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}
