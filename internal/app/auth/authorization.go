package auth

import (
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// Policy evaluates the two-role access rules. It is stateless and runs on
// every request against the identity carried by the verified session token;
// client-supplied role or id fields are never consulted.
type Policy struct{}

// NewPolicy creates a new Policy
func NewPolicy() *Policy {
	return &Policy{}
}

// ScopeAll is the resolved scope meaning "no resident filter" (admin only)
const ScopeAll int64 = 0

// ResolveResidentScope decides which resident's rows a list request may see.
// requestedID is the residentId query parameter, 0 when absent.
//
// Admins read any scope, including all rows. Residents always read their own
// rows: an absent id resolves to their own, and a foreign id is rejected.
func (p *Policy) ResolveResidentScope(identity models.Identity, requestedID int64) (int64, error) {
	if identity.IsAdmin() {
		return requestedID, nil
	}

	if requestedID == 0 || requestedID == identity.SubjectID {
		return identity.SubjectID, nil
	}

	return 0, apperrors.NewForbiddenError("cannot access another resident's records")
}

// RequireOwn guards writes that carry a resident_id payload field. Admins may
// write on behalf of any resident; residents only for themselves.
func (p *Policy) RequireOwn(identity models.Identity, residentID int64) error {
	if identity.IsAdmin() {
		return nil
	}

	if residentID != identity.SubjectID {
		return apperrors.NewForbiddenError("cannot act on another resident's records")
	}

	return nil
}

// RequireAdmin rejects any non-admin identity
func (p *Policy) RequireAdmin(identity models.Identity) error {
	if !identity.IsAdmin() {
		return apperrors.NewForbiddenError("administrator access required")
	}

	return nil
}
