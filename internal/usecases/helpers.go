package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
	"panchayat.backend/pkg/logger"
)

// timeNow is swapped in tests that depend on the calendar day.
var timeNow = time.Now

// IdentityCache holds resolved identities between requests.
type IdentityCache interface {
	Get(username string) (*entities.Identity, bool)
	Set(username string, identity *entities.Identity)
	Delete(username string)
}

// TokenRevoker remembers token ids that were logged out early.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type noopIdentityCache struct{}

func (noopIdentityCache) Get(string) (*entities.Identity, bool) { return nil, false }
func (noopIdentityCache) Set(string, *entities.Identity)        {}
func (noopIdentityCache) Delete(string)                         {}

func cacheOrNoop(c IdentityCache) IdentityCache {
	if c == nil {
		return noopIdentityCache{}
	}
	return c
}

// resolveCitizen loads the citizen profile for username, mapping a miss to a 404.
func resolveCitizen(ctx context.Context, profiles repositories.ProfileRepository, username string) (*entities.Citizen, error) {
	citizen, err := profiles.GetCitizenByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("citizen '%s' not found", username))
		}
		return nil, err
	}
	return citizen, nil
}

// notFoundAs replaces a repository ErrNotFound with a descriptive 404.
func notFoundAs(err error, message string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(message)
	}
	return err
}

// recordActivity appends an audit entry. It runs inside the caller's
// transaction when ctx carries one.
func recordActivity(ctx context.Context, logs repositories.ActivityLogRepository, actor, affected, action, oldValue, newValue string) error {
	if logs == nil {
		return nil
	}
	entry := &entities.ActivityLog{
		Time:         timeNow().UTC(),
		AffectedUser: affected,
		Actor:        actor,
		Action:       action,
		OldValue:     oldValue,
		NewValue:     newValue,
	}
	if err := logs.Create(ctx, entry); err != nil {
		logger.Error(ctx, "Failed to record activity", zap.String("action", action), zap.Error(err))
		return err
	}
	return nil
}
