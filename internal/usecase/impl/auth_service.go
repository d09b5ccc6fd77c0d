// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens a customer account together with its empty cart and signs the user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	newUser, err := srv.createAccount(ctx, input, entity.RoleCustomer)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	output, err := srv.issueSession(ctx, newUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in registered user")
	}
	srv.log(ctx).Info("User registered successfully", slog.Any("userID", newUser.ID))

	return output, nil
}

// CreateAdmin provisions an administrator account with its cart.
func (srv *authService) CreateAdmin(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	admin, err := srv.createAccount(ctx, input, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create administrator")
	}
	srv.log(ctx).Info("Administrator created", slog.Any("userID", admin.ID), slog.String("email", admin.Email))

	return admin, nil
}

func (srv *authService) createAccount(ctx context.Context, input *usecase.RegisterInput, role entity.Role) (*entity.User, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        entity.NormalizeEmail(input.Email),
		PasswordHash: hashedPassword,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         role,
		Enabled:      true,
	}

	// The account and its cart are created together so every user always owns a cart.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		cartRepo := repoFactory.NewCartRepository()

		exists, err := userRepo.ExistsByEmail(ctx, newUser.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if err := cartRepo.CreateCart(ctx, &entity.Cart{UserID: newUser.ID}); err != nil {
			return errors.Wrap(err, "failed to create cart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return newUser, nil
}

// Login verifies credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Password check runs before the enabled check so a disabled account does not reveal itself
	// to someone without the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	if !user.Enabled {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "account disabled"))

		return nil, domainerrors.ErrUserDisabled.WrapMessage("login failed")
	}

	output, err := srv.issueSession(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to open session")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// issueSession generates a token pair and stores the refresh token hash.
func (srv *authService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	roles := entity.Roles{user.Role}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, user.ID, refreshTokenString); err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

func (srv *authService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions <= 0 {
		// No session limit: direct insert avoids unnecessary transaction overhead.
		return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, userID, refreshTokenString)
	}

	// With a session limit, lock/count/insert run in one short transaction.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		if err := userRepo.LockForSession(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded.WrapMessage("active session limit exceeded")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, userID, refreshTokenString)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute session transaction")
	}

	return nil
}

func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token using a stored refresh token.
// The refresh token remains unchanged.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("token owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Enabled {
		return nil, domainerrors.ErrUserDisabled.WrapMessage("refresh rejected")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout invalidates a session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		// An invalid token can still be deleted from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Debug("Logout for a session that no longer exists")

		return nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

func (srv *authService) PruneExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune expired sessions")
	}
	srv.log(ctx).Info("Expired sessions pruned", slog.Int64("removed", removed))

	return removed, nil
}

// GetCurrentUser returns the profile of the authenticated user.
func (srv *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("current user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
