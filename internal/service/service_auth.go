package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/config"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// defaultUserRole is embedded into the "role" claim of every issued token.
const defaultUserRole = "User"

// minPinLength is the minimum accepted length of an app-unlock PIN.
const minPinLength = 4

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, the JWT token lifecycle
// and the app-unlock PIN flow, using a UserRepository for persistence and
// bcrypt for password and PIN hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience is the "aud" claim embedded in every issued JWT and
	// validated alongside the issuer.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenAudience:  cfg.TokenAudience,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account together with its starter categories
// and returns a fresh session.
//
// The password is bcrypt-hashed before persistence. A live account with the
// same email surfaces as store.ErrEmailAlreadyExists.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthSession, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.AuthSession{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthSession{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now()
	user := models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Role:         defaultUserRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userRepository.Create(ctx, user, stampedDefaultCategories(0, now))
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.AuthSession{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issueSession(ctx, created)
}

// Login authenticates an existing user, records the login (seeding starter
// categories on the very first one) and returns a fresh session.
//
// A missing account and a wrong password both surface as ErrWrongPassword so
// callers cannot probe for registered emails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthSession, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.AuthSession{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthSession{}, ErrWrongPassword
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.AuthSession{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(request.Password, user.PasswordHash) {
		log.Error().Int64("id", user.ID).Str("email", user.Email).Msg("wrong password")
		return models.AuthSession{}, ErrWrongPassword
	}

	now := time.Now()
	user, err = a.userRepository.RecordLogin(ctx, user, now, stampedDefaultCategories(user.ID, now))
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("recording login failed")
		return models.AuthSession{}, fmt.Errorf("recording login failed: %w", err)
	}

	return a.issueSession(ctx, user)
}

// Refresh exchanges an expired access token for a fresh session. The
// signature, issuer and audience of the presented token are verified; only
// its expiry is waived. The accompanying refresh token is accepted as an
// opaque value.
func (a *authService) Refresh(ctx context.Context, request models.RefreshRequest) (models.AuthSession, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ParseExpiredJWTToken(request.Token, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		log.Err(err).Msg("expired token parsing failed")
		return models.AuthSession{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.AuthSession{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("token subject lookup failed")
		return models.AuthSession{}, ErrTokenIsExpiredOrInvalid
	}

	return a.issueSession(ctx, user)
}

// ParseToken validates and parses a raw JWT string on the request path.
//
// Any validation failure (expired, wrong issuer or audience, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// SetupPin stores a bcrypt hash of the app-unlock PIN. The PIN must be at
// least four characters and match its confirmation.
func (a *authService) SetupPin(ctx context.Context, userID int64, request models.SetupPinRequest) error {
	log := logger.FromContext(ctx)

	if err := validatePin(request.Pin, request.ConfirmPin); err != nil {
		return err
	}

	pinHash, err := utils.HashPassword(request.Pin)
	if err != nil {
		log.Err(err).Msg("pin hashing failed")
		return fmt.Errorf("pin hashing failed: %w", err)
	}

	if err := a.userRepository.SetPin(ctx, userID, pinHash, time.Now()); err != nil {
		log.Err(err).Int64("id", userID).Msg("storing pin failed")
		return fmt.Errorf("storing pin failed: %w", err)
	}

	return nil
}

// VerifyPin reports whether the presented PIN matches the stored one. A
// missing user or an account without a PIN yields false without error.
func (a *authService) VerifyPin(ctx context.Context, userID int64, request models.VerifyPinRequest) (bool, error) {
	user, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}
		return false, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.HasPin() {
		return false, nil
	}

	return utils.CheckPassword(request.Pin, user.PinHash), nil
}

// ChangePin replaces the stored PIN after verifying the current one. The new
// PIN is validated like on setup.
func (a *authService) ChangePin(ctx context.Context, userID int64, request models.ChangePinRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.HasPin() || !utils.CheckPassword(request.CurrentPin, user.PinHash) {
		return ErrWrongPin
	}

	if err := validatePin(request.NewPin, request.ConfirmPin); err != nil {
		return err
	}

	pinHash, err := utils.HashPassword(request.NewPin)
	if err != nil {
		log.Err(err).Msg("pin hashing failed")
		return fmt.Errorf("pin hashing failed: %w", err)
	}

	if err := a.userRepository.SetPin(ctx, userID, pinHash, time.Now()); err != nil {
		log.Err(err).Int64("id", userID).Msg("storing pin failed")
		return fmt.Errorf("storing pin failed: %w", err)
	}

	return nil
}

// HasPin reports whether the user has set up an app-unlock PIN. A missing
// user yields false without error.
func (a *authService) HasPin(ctx context.Context, userID int64) (bool, error) {
	user, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}
		return false, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.HasPin(), nil
}

// issueSession signs a fresh access token and refresh token pair for the
// user.
func (a *authService) issueSession(ctx context.Context, user models.User) (models.AuthSession, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token creation failed")
		return models.AuthSession{}, fmt.Errorf("token creation failed: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("refresh token creation failed")
		return models.AuthSession{}, fmt.Errorf("refresh token creation failed: %w", err)
	}

	return models.AuthSession{
		Token:        token.SignedString,
		RefreshToken: refreshToken,
		ExpiresAt:    token.ExpiresAt.Time,
		User:         models.NewProfile(user),
	}, nil
}

// validatePin enforces the shared PIN rules of setup and change.
func validatePin(pin, confirm string) error {
	if len(pin) < minPinLength {
		return ErrPinTooShort
	}
	if pin != confirm {
		return ErrPinMismatch
	}
	return nil
}

// stampedDefaultCategories returns the starter categories with their
// ownership and timestamps filled in.
func stampedDefaultCategories(userID int64, now time.Time) []models.Category {
	seed := models.DefaultCategories(userID)
	for i := range seed {
		seed[i].CreatedAt = now
		seed[i].UpdatedAt = now
	}
	return seed
}
