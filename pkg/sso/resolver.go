// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/storage"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/types"
)

const resolveTimeout = 30 * time.Second

// Resolution is the outcome of matching claims to a local identity.
type Resolution struct {
	Identity     *types.Identity
	Created      bool
	CohortErrors []error
}

func (r *Resolution) clone() *Resolution {
	identity := *r.Identity

	return &Resolution{
		Identity:     &identity,
		Created:      r.Created,
		CohortErrors: slices.Clone(r.CohortErrors),
	}
}

// IdentityResolver finds or creates the identity named by a set of claims,
// copies the profile attributes onto it and applies cohort memberships.
type IdentityResolver struct {
	identities IdentityStoreInterface
	cohorts    CohortStoreInterface
	tx         TxRunnerInterface

	realm                  string
	preventAccountCreation bool

	inflight singleflight.Group

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *IdentityResolver) Resolve(ctx context.Context, claims *Claims) (*Resolution, error) {
	ctx, span := r.tracer.Start(ctx, "sso.IdentityResolver.Resolve")
	defer span.End()

	if claims == nil {
		return nil, &MissingClaimError{Name: "username"}
	}

	username := CanonicalUsername(claims.Username)
	if username == "" {
		return nil, &MissingClaimError{Name: "username"}
	}

	// identical concurrent logins share one transaction and its committed
	// result; the shared work is not tied to the caller that started it
	key := username + "\x00" + claims.fingerprint()
	leader := false

	ch := r.inflight.DoChan(key, func() (interface{}, error) {
		leader = true

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), resolveTimeout)
		defer cancel()

		var res *Resolution

		err := r.tx.WithTx(ctx, func(ctx context.Context) error {
			var err error
			res, err = r.resolve(ctx, username, claims)
			return err
		})

		if err != nil {
			return nil, err
		}

		return res, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-ch:
		if result.Err != nil {
			return nil, result.Err
		}

		res := result.Val.(*Resolution).clone()
		if !leader {
			res.Created = false
		}

		return res, nil
	}
}

func (r *IdentityResolver) resolve(ctx context.Context, username string, claims *Claims) (*Resolution, error) {
	identity, created, err := r.findOrCreate(ctx, username)
	if err != nil {
		return nil, err
	}

	if identity.AuthMethod != AuthMethod {
		return nil, fmt.Errorf("%w: %q", ErrAuthMethodMismatch, identity.AuthMethod)
	}

	if identity.Suspended {
		return nil, ErrIdentitySuspended
	}

	if applyProfile(identity, claims) {
		if err := r.identities.UpdateIdentity(ctx, identity); err != nil {
			return nil, fmt.Errorf("failed to update identity %s: %w", identity.ID, err)
		}
	}

	return &Resolution{
		Identity:     identity,
		Created:      created,
		CohortErrors: r.syncCohorts(ctx, identity, claims.CohortIDs()),
	}, nil
}

func (r *IdentityResolver) findOrCreate(ctx context.Context, username string) (*types.Identity, bool, error) {
	identity, err := r.identities.FindIdentityByUsername(ctx, username, r.realm)
	if err == nil {
		return identity, false, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up identity: %w", err)
	}

	if r.preventAccountCreation {
		return nil, false, ErrAccountCreationDisabled
	}

	identity, err = r.identities.CreateIdentity(ctx, username, r.realm, AuthMethod)
	if err == nil {
		r.logger.Security().UserCreated(identity.Username, AuthMethod)
		return identity, true, nil
	}

	if !errors.Is(err, storage.ErrDuplicateKey) {
		return nil, false, fmt.Errorf("failed to create identity: %w", err)
	}

	// another writer created it first
	r.logger.Debugf("identity %s created concurrently, retrying lookup", username)

	identity, err = r.identities.FindIdentityByUsername(ctx, username, r.realm)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrStoreConflict, err)
	}

	return identity, false, nil
}

func (r *IdentityResolver) syncCohorts(ctx context.Context, identity *types.Identity, ids []string) []error {
	var errs []error

	for _, id := range uniqueCohortIDs(ids) {
		added, err := r.cohorts.AddCohortMember(ctx, id, identity.ID)

		switch {
		case err == nil:
			if added {
				r.logger.Debugf("added %s to cohort %s", identity.Username, id)
			}
			continue
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrForeignKeyViolation):
			err = &CohortError{CohortID: id, Err: ErrUnknownCohort}
		default:
			err = &CohortError{CohortID: id, Err: err}
		}

		r.logger.Warnf("cohort membership for %s not applied: %v", identity.Username, err)
		errs = append(errs, err)
	}

	return errs
}

// applyProfile overwrites the synced attributes and reports whether any changed.
func applyProfile(identity *types.Identity, claims *Claims) bool {
	changed := identity.Email != claims.Email ||
		identity.FirstName != claims.FirstName ||
		identity.LastName != claims.LastName ||
		identity.IDNumber != string(claims.ExternalID)

	identity.Email = claims.Email
	identity.FirstName = claims.FirstName
	identity.LastName = claims.LastName
	identity.IDNumber = string(claims.ExternalID)

	return changed
}

func uniqueCohortIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	// concurrent logins take the membership row locks in the same order
	slices.Sort(out)

	return out
}

func NewIdentityResolver(
	identities IdentityStoreInterface,
	cohorts CohortStoreInterface,
	tx TxRunnerInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *IdentityResolver {
	r := new(IdentityResolver)

	r.identities = identities
	r.cohorts = cohorts
	r.tx = tx

	r.realm = config.Realm
	if r.realm == "" {
		r.realm = DefaultRealm
	}
	r.preventAccountCreation = config.PreventAccountCreation

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
