// Package policy is the single authorization evaluator consulted by every
// engine. Each rule is a pure function over the request principal and the
// already-resolved resource, so existence checks (404) always run before a
// rule does.
package policy

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID uint
	Role   model.UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// OwnerOrAdmin allows the action when the principal owns the resource or is
// an admin.
func OwnerOrAdmin(p Principal, ownerID uint) error {
	if p.UserID == ownerID || p.IsAdmin() {
		return nil
	}
	return util.ErrForbidden
}

// OwnerOnly allows the action for the resource owner alone; the admin role
// grants no bypass here. Question create and edit use this rule, question
// delete stays owner-or-admin.
func OwnerOnly(p Principal, ownerID uint) error {
	if p.UserID == ownerID {
		return nil
	}
	return util.ErrForbidden
}

// CanAttemptQuiz applies the visibility rule: private quizzes are only
// attemptable (or readable in full) by admins; public and unlisted quizzes
// are open to any authenticated principal.
func CanAttemptQuiz(p Principal, viewType model.ViewType) error {
	if viewType == model.ViewPrivate && !p.IsAdmin() {
		return util.ErrQuizPrivate
	}
	return nil
}

// ClassScoped applies the class-scoping rule for assignment-linked actions:
// the principal must be enrolled as a student in the assignment's class
// unless admin. The caller resolves membership; a missing assignment is the
// caller's invalid-reference failure, not a policy denial.
func ClassScoped(p Principal, isMember bool) error {
	if isMember || p.IsAdmin() {
		return nil
	}
	return util.ErrNotInClass
}
