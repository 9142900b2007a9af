// Package access decides who may view a track request's private details.
package access

import (
	"crypto/subtle"

	"backing_tracks/internal/domain/entities"
)

// Authorize evaluates the viewer against the request. Rules are ordered from
// strongest to weakest credential and the first match wins:
//
//  1. operators see everything
//  2. the authenticated owner
//  3. an authenticated non-owner is denied outright, even with a valid token
//  4. the guest token of a request that has no owner yet
//  5. nothing else
//
// Denial is a normal outcome, not an error. The owner email is deliberately
// not consulted.
func Authorize(req entities.RequestRecord, viewer entities.ViewerContext) entities.AccessDecision {
	if viewer.IsOperator {
		return granted(entities.AccessReasonOperatorOverride, false)
	}

	if req.OwnerUserID != "" && viewer.AuthenticatedUserID != "" {
		if viewer.AuthenticatedUserID == req.OwnerUserID {
			return granted(entities.AccessReasonOwnerMatch, false)
		}
		return denied(entities.AccessReasonWrongOwner)
	}

	if req.OwnerUserID == "" && tokensMatch(viewer.PresentedToken, req.GuestAccessToken) {
		return granted(entities.AccessReasonGuestTokenMatch, !viewer.IsAuthenticated())
	}

	return denied(entities.AccessReasonNoCredential)
}

// tokensMatch is an exact, constant-time comparison. An empty token on either
// side never matches.
func tokensMatch(presented, stored string) bool {
	if presented == "" || stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}

func granted(reason entities.AccessReason, needsSignIn bool) entities.AccessDecision {
	return entities.AccessDecision{Granted: true, Reason: reason, NeedsSignIn: needsSignIn}
}

func denied(reason entities.AccessReason) entities.AccessDecision {
	return entities.AccessDecision{Granted: false, Reason: reason}
}
