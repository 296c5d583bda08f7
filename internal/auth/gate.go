package auth

import (
	"context"
	"errors"

	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/model"
)

// UserLookup resolves usernames. Unknown usernames must yield
// apperrors.ErrUserNotFound.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// Gate decides whether a caller may act on a username's data.
type Gate struct {
	users    UserLookup
	disabled bool
}

// NewGate creates a gate. With disabled set only the existence check runs.
func NewGate(users UserLookup, disabled bool) *Gate {
	return &Gate{users: users, disabled: disabled}
}

// Enforcing reports whether the identity check is active.
func (g *Gate) Enforcing() bool {
	return !g.disabled
}

// Authorize resolves username and checks it against caller, which is nil
// when no verified token accompanied the request. The target's existence is
// checked first; a missing target seen by an authenticated caller is
// reported as ErrNotAuthorized so other users' existence is not revealed.
func (g *Gate) Authorize(ctx context.Context, caller *Claims, username string) (*model.User, error) {
	user, err := g.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) && g.Enforcing() && caller != nil {
			return nil, apperrors.ErrNotAuthorized
		}
		return nil, err
	}

	if !g.Enforcing() {
		return user, nil
	}
	if caller == nil {
		return nil, apperrors.ErrNotAuthorized
	}
	callerID, err := caller.UserID()
	if err != nil || callerID != user.ID {
		return nil, apperrors.ErrNotAuthorized
	}
	return user, nil
}
