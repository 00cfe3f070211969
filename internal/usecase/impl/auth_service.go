package impl

import (
	"context"
	"log/slog"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/domain/service"
	"marquee/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        service.Clock
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check if an account with this email already exists.
		_, err := userRepo.FindUserByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Create the user with the default role.
		newUser := &entity.User{
			ID:       uuid.New(),
			Name:     input.Name,
			Email:    input.Email,
			Password: hashedPassword,
			Role:     entity.RoleUser,
		}
		if err := userRepo.CreateUser(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", slog.Any("error", err), slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.log(ctx).Debug("User registered successfully", slog.Any("user_id", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Find the account. An unknown email is reported the same way
		// as a wrong password.
		user, err := userRepo.FindUserByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, user.Password) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 3. Generate new tokens.
		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, string(user.Role))
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 4. Securely store the new refresh token.
		if err := srv.storeRefreshToken(ctx, refreshRepo, user.ID, refreshTokenString); err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("user_id", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RotateToken consumes a refresh token and mints a successor pair.
//
// The token record walks a one-way state machine: a live token is revoked
// exactly once to mint its successor. A token found already revoked means
// the rotation chain was replayed, which is treated as theft: every
// session of the owning user is revoked and a security error is raised.
func (srv *authService) RotateToken(ctx context.Context, input usecase.RotateTokenInput) (*usecase.RotateTokenOutput, error) {
	srv.log(ctx).Info("Attempting to rotate refresh token")

	// Signature and shape are checked up front. A token past its JWT
	// expiry still reaches the database path so the stored record gets
	// marked revoked there.
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil && !errors.Is(err, jwt.ErrTokenExpired) {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token validation failed")
	}
	if claims != nil && claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("token is not a refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Look the token up by its stored hash.
		record, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("refresh token not found")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		// 2. A revoked token presented again is a replay. Contain it by
		// killing every session of the owning user.
		if record.Revoked {
			if err := refreshRepo.RevokeRefreshTokensByUserID(ctx, record.UserID); err != nil {
				return errors.Wrap(err, "failed to revoke user sessions after reuse")
			}

			return domainerrors.ErrTokenReuseDetected.WrapMessage("revoked refresh token presented again")
		}

		// 3. An expired token is retired, never silently renewed.
		now := srv.clock.Now()
		if record.IsExpired(now) {
			if _, err := refreshRepo.RevokeRefreshToken(ctx, record.ID); err != nil {
				return errors.Wrap(err, "failed to revoke expired refresh token")
			}

			return domainerrors.ErrTokenExpired.WrapMessage("refresh token has expired, please log in again")
		}

		// 4. Consume the token. The conditional update makes consumption
		// at-most-once: of two concurrent rotations, exactly one wins and
		// the loser takes the reuse path.
		consumed, err := refreshRepo.RevokeRefreshToken(ctx, record.ID)
		if err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}
		if !consumed {
			if err := refreshRepo.RevokeRefreshTokensByUserID(ctx, record.UserID); err != nil {
				return errors.Wrap(err, "failed to revoke user sessions after reuse")
			}

			return domainerrors.ErrTokenReuseDetected.WrapMessage("refresh token consumed concurrently")
		}

		// 5. Mint the successor pair.
		user, err := userRepo.FindUserByID(ctx, record.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, string(user.Role))
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, user.ID, newRefreshTokenString)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to rotate refresh token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute token rotation transaction")
	}
	srv.log(ctx).Debug("Refresh token rotated")

	return &usecase.RotateTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout revokes the presented refresh token, ending that session only.
func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to revoke its record.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		record, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				// Logging out an unknown session is a no-op.
				return nil
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		if _, err := refreshRepo.RevokeRefreshToken(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// ListSessions returns the user's live refresh token records.
func (srv *authService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	var sessions []*entity.RefreshToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RefreshTokenRepo().FindRefreshTokensByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find refresh tokens")
		}
		sessions = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

// CleanupExpiredTokens garbage-collects token records past expiry.
func (srv *authService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.RefreshTokenRepo().DeleteExpiredRefreshTokens(ctx, srv.clock.Now())
		if err != nil {
			return errors.Wrap(err, "failed to delete expired refresh tokens")
		}
		removed = count

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to clean up expired tokens", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to clean up expired tokens")
	}
	srv.log(ctx).Info("Expired refresh tokens removed", slog.Int64("count", removed))

	return removed, nil
}

// storeRefreshToken hashes and persists a freshly minted refresh token.
func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: srv.clock.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
