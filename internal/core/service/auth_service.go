package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

// DefaultTokenTTL is the fixed session lifetime: tokens expire 12 hours after
// issuance with no server-side revocation.
const DefaultTokenTTL = 12 * time.Hour

// AuthService implements registration, login, and HS256 token issuance.
//
// The token verifier performs no issuer or audience validation; only the
// signature and the expiry (with zero leeway) are checked. This mirrors the
// verifier the HTTP layer runs and is a known hardening gap.
type AuthService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	audit     ports.AuditSink
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, audit ports.AuditSink, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		users:     users,
		roles:     roles,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
		log:       log,
	}
}

// Register validates the role and password contracts and persists a new
// identity. Every violated rule is reported, not just the first.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)

	if !in.Role.Valid() {
		s.record(email, domain.AuditRegister, false, "invalid role")
		return nil, domain.ErrInvalidRole
	}
	exists, err := s.roles.Exists(ctx, in.Role)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.record(email, domain.AuditRegister, false, "role not seeded")
		return nil, domain.ErrInvalidRole
	}

	violations := checkPassword(in.Password)
	duplicate := false
	if !validEmail(email) {
		violations = append(violations, "email must be a valid address")
	} else if _, err := s.users.FindByEmail(ctx, email); err == nil {
		duplicate = true
		violations = append(violations, "email already registered")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if len(violations) > 0 {
		s.record(email, domain.AuditRegister, false, strings.Join(violations, "; "))
		if duplicate && len(violations) == 1 {
			// duplicate email as the only failure is a conflict, not a
			// malformed request
			return nil, domain.ErrUserExists
		}
		return nil, &domain.ValidationError{Violations: violations}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Bio:          in.Bio,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// lost a race with a concurrent registration for the same email
			s.record(email, domain.AuditRegister, false, "email already registered")
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	s.record(email, domain.AuditRegister, true, "")
	s.log.Info().Str("email", email).Str("role", string(in.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a signed session token. Unknown
// users, inactive users, and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(email, domain.AuditLogin, false, "unknown user")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		s.record(email, domain.AuditLogin, false, "inactive user")
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.record(email, domain.AuditLogin, false, "wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.record(email, domain.AuditLogin, true, "")
	s.log.Info().Str("email", email).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	role := user.Role
	if role == "" {
		role = domain.DefaultRole
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.DisplayName(),
		"role":  string(role),
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) record(email string, action domain.AuditAction, success bool, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Email:     email,
		Action:    action,
		Success:   success,
		Reason:    reason,
		Timestamp: s.now().UTC(),
	})
}

// normalizeEmail makes email matching case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
