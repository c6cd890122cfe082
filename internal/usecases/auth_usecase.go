package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
	"panchayat.backend/pkg/crypto"
	"panchayat.backend/pkg/jwt"
	"panchayat.backend/pkg/logger"
	"panchayat.backend/pkg/metrics"
)

const tokenTypeBearer = "Bearer"

// Session is a verified bearer token and the identity behind it.
type Session struct {
	Identity  *entities.Identity
	Actor     access.Actor
	TokenID   string
	ExpiresAt time.Time
}

// AuthUsecase handles registration, login and session checks
type AuthUsecase struct {
	uow         repositories.UnitOfWork
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	jwtService  *jwt.JWTService
	hasher      *crypto.PasswordHasher
	revocations TokenRevoker
	identities  IdentityCache
	metrics     *metrics.Metrics
}

// NewAuthUsecase creates a new auth usecase. revocations, identities and m may be nil.
func NewAuthUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jwtService *jwt.JWTService,
	hasher *crypto.PasswordHasher,
	revocations TokenRevoker,
	identities IdentityCache,
	m *metrics.Metrics,
) *AuthUsecase {
	if hasher == nil {
		hasher = crypto.NewPasswordHasher(crypto.DefaultCost)
	}
	return &AuthUsecase{
		uow:         uow,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		hasher:      hasher,
		revocations: revocations,
		identities:  cacheOrNoop(identities),
		metrics:     m,
	}
}

// Register stores an unverified user together with its role profile.
func (u *AuthUsecase) Register(ctx context.Context, reg *entities.Registration) (*entities.Identity, error) {
	if reg == nil {
		return nil, domainerrors.BadRequest("registration payload is required")
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return nil, domainerrors.BadRequest("Password is too long")
		}
		return nil, err
	}

	user := &entities.User{
		Username:      reg.Username,
		Name:          reg.Name,
		PasswordHash:  hash,
		Email:         reg.Email,
		ContactNumber: reg.ContactNumber,
		Role:          reg.UserType,
	}
	identity := &entities.Identity{User: user}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.createProfile(txCtx, reg, identity)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists(fmt.Sprintf("username '%s' is already taken", reg.Username))
		}
		return nil, err
	}

	u.metrics.IncrementRegistered(string(user.Role))
	logger.Info(ctx, "User registered", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return identity, nil
}

func (u *AuthUsecase) createProfile(ctx context.Context, reg *entities.Registration, identity *entities.Identity) error {
	switch p := reg.Profile.(type) {
	case entities.CitizenRegistration:
		c := &entities.Citizen{
			Username:                 reg.Username,
			DateOfBirth:              p.DateOfBirth,
			DateOfDeath:              p.DateOfDeath,
			Gender:                   p.Gender,
			Address:                  p.Address,
			EducationalQualification: p.EducationalQualification,
			Occupation:               p.Occupation,
		}
		if c.DateOfDeath != nil && c.DateOfDeath.IsZero() {
			c.DateOfDeath = nil
		}
		identity.Citizen = c
		return u.profileRepo.CreateCitizen(ctx, c)
	case entities.AdminRegistration:
		a := &entities.Admin{Username: reg.Username, Gender: p.Gender, DateOfBirth: p.DateOfBirth, Address: p.Address}
		identity.Admin = a
		return u.profileRepo.CreateAdmin(ctx, a)
	case entities.AgencyRegistration:
		a := &entities.GovernmentAgency{Username: reg.Username, Role: p.Title}
		identity.Agency = a
		return u.profileRepo.CreateAgency(ctx, a)
	case entities.EmployeeRegistration:
		e := &entities.PanchayatEmployee{Username: reg.Username, Role: p.Title}
		identity.Employee = e
		return u.profileRepo.CreateEmployee(ctx, e)
	}
	return domainerrors.BadRequest("Invalid user type provided")
}

// Login checks credentials and issues an access token. Unknown usernames and
// wrong passwords produce the same error.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			u.metrics.IncrementLoginFailure("unknown_user")
			return nil, domainerrors.InvalidCredentials()
		}
		return nil, err
	}

	if !u.hasher.Check(input.Password, user.PasswordHash) {
		u.metrics.IncrementLoginFailure("bad_password")
		return nil, domainerrors.InvalidCredentials()
	}

	if !user.IsVerified {
		u.metrics.IncrementLoginFailure("not_verified")
		return nil, domainerrors.NotVerified()
	}

	identity, err := u.loadIdentity(ctx, user)
	if err != nil {
		return nil, err
	}

	issued, err := u.jwtService.GenerateToken(user.Username, string(user.Role), user.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.identities.Set(user.Username, identity)

	return &entities.AuthResponse{
		AccessToken: issued.Token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		Identity:    identity,
	}, nil
}

// VerifySession resolves a bearer token to its identity.
func (u *AuthUsecase) VerifySession(ctx context.Context, token string) (*Session, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "token has expired", domainerrors.ErrTokenExpired)
		}
		return nil, domainerrors.Unauthorized("invalid token")
	}

	if u.revocations != nil && claims.ID != "" {
		revoked, err := u.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, domainerrors.Unauthorized("token has been revoked")
		}
	}

	identity, ok := u.identities.Get(claims.Username())
	if !ok {
		user, err := u.userRepo.GetByUsername(ctx, claims.Username())
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.Unauthorized("unknown token subject")
			}
			return nil, err
		}
		identity, err = u.loadIdentity(ctx, user)
		if err != nil {
			return nil, err
		}
		u.identities.Set(user.Username, identity)
	}

	if !identity.User.IsVerified {
		return nil, domainerrors.Unauthorized("account is not verified")
	}
	if !claims.IssuedFor(identity.User.CreatedAt) {
		return nil, domainerrors.Unauthorized("token was issued to an earlier account")
	}
	if string(identity.User.Role) != claims.Role {
		return nil, domainerrors.Unauthorized("token role does not match account")
	}

	session := &Session{
		Identity: identity,
		Actor:    access.ActorFromIdentity(identity),
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// Me returns the identity behind actor, read fresh from storage.
func (u *AuthUsecase) Me(ctx context.Context, actor access.Actor) (*entities.Identity, error) {
	if actor.Username == "" {
		return nil, domainerrors.Unauthorized("authentication required")
	}
	user, err := u.userRepo.GetByUsername(ctx, actor.Username)
	if err != nil {
		return nil, notFoundAs(err, "user not found")
	}
	return u.loadIdentity(ctx, user)
}

// Logout revokes the session's token until it would have expired anyway.
func (u *AuthUsecase) Logout(ctx context.Context, session *Session) error {
	if session == nil || session.TokenID == "" {
		return domainerrors.Unauthorized("authentication required")
	}
	u.identities.Delete(session.Actor.Username)
	if u.revocations == nil {
		return nil
	}
	return u.revocations.Revoke(ctx, session.TokenID, time.Until(session.ExpiresAt))
}

// loadIdentity attaches the role profile to user.
func (u *AuthUsecase) loadIdentity(ctx context.Context, user *entities.User) (*entities.Identity, error) {
	return loadIdentity(ctx, u.profileRepo, user)
}

func loadIdentity(ctx context.Context, profiles repositories.ProfileRepository, user *entities.User) (*entities.Identity, error) {
	identity := &entities.Identity{User: user}
	var err error
	switch user.Role {
	case entities.RoleCitizen:
		identity.Citizen, err = profiles.GetCitizenByUsername(ctx, user.Username)
	case entities.RoleAdmin:
		identity.Admin, err = profiles.GetAdminByUsername(ctx, user.Username)
	case entities.RoleGovernmentAgency:
		identity.Agency, err = profiles.GetAgencyByUsername(ctx, user.Username)
	case entities.RolePanchayatEmployee:
		identity.Employee, err = profiles.GetEmployeeByUsername(ctx, user.Username)
	default:
		return nil, domainerrors.InternalServerError(fmt.Sprintf("user %s has unknown role %q", user.Username, user.Role))
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(fmt.Errorf("user %s has no %s profile: %w", user.Username, user.Role, err))
		}
		return nil, err
	}
	return identity, nil
}
