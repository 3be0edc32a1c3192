// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// RawClaims is a verified but otherwise untrusted token payload.
type RawClaims map[string]interface{}

// Claims is the validated view of a token payload. Values are copied out of
// the token and must be treated as read only.
type Claims struct {
	Username   string     `json:"username" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	FirstName  string     `json:"firstname,omitempty"`
	LastName   string     `json:"lastname,omitempty"`
	ExternalID ClaimValue `json:"external_id,omitempty"`
	Cohorts    CohortList `json:"cohort,omitempty"`
}

// CohortIDs returns a copy of the cohort identifiers, in claim order.
func (c *Claims) CohortIDs() []string {
	return slices.Clone(c.Cohorts)
}

// fingerprint identifies the claim set for in-flight deduplication.
func (c *Claims) fingerprint() string {
	b, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(b)
}

// CanonicalUsername is the form usernames are stored and looked up in.
func CanonicalUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ClaimValue is a string claim that also accepts a JSON number, kept in its
// decimal form.
type ClaimValue string

func (v *ClaimValue) UnmarshalJSON(b []byte) error {
	raw, err := decodeNumberPreserving(b)
	if err != nil {
		return err
	}

	if raw == nil {
		*v = ""
		return nil
	}

	s, err := scalarString(raw)
	if err != nil {
		return err
	}

	*v = ClaimValue(s)
	return nil
}

// CohortList accepts either a JSON array or a single scalar.
type CohortList []string

func (c *CohortList) UnmarshalJSON(b []byte) error {
	raw, err := decodeNumberPreserving(b)
	if err != nil {
		return err
	}

	switch t := raw.(type) {
	case nil:
		*c = nil
	case []interface{}:
		out := make(CohortList, 0, len(t))
		for _, e := range t {
			s, err := scalarString(e)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		*c = out
	default:
		s, err := scalarString(t)
		if err != nil {
			return err
		}
		*c = CohortList{s}
	}

	return nil
}

func decodeNumberPreserving(b []byte) (interface{}, error) {
	var raw interface{}

	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()

	if err := d.Decode(&raw); err != nil {
		return nil, err
	}

	return raw, nil
}

func scalarString(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		return "", fmt.Errorf("expected a string or a number, got %T", v)
	}
}
