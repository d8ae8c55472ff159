package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"vehicle_rental/internal/metrics"
	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

// Session identifies who is acting. It is built from the login token and
// handed to every role-gated operation.
type Session struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Email    string      `json:"email,omitempty"`
}

// CustomerEmail is the email the customer dashboard is resolved by.
func (s Session) CustomerEmail() string {
	if s.Email != "" {
		return s.Email
	}
	return s.Username
}

func (s Session) Is(role models.Role) bool {
	return s.Role == role
}

type RegisterInput struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	Email    string      `json:"email"`
}

// AuthService registers and authenticates users. Passwords are stored as
// bcrypt hashes.
type AuthService struct {
	stg  store.IStore
	cost int
}

func NewAuthService(stg store.IStore, cost int) *AuthService {
	return &AuthService{stg: stg, cost: cost}
}

func (a *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Role = models.Role(strings.ToLower(strings.TrimSpace(string(in.Role))))

	var bad []string
	if in.Username == "" {
		bad = append(bad, "username")
	}
	if in.Password == "" {
		bad = append(bad, "password")
	}
	if !in.Role.Valid() {
		bad = append(bad, "role")
	}
	if len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}

	existing, err := a.stg.Users().FindOne(ctx, store.Filter{models.FieldUsername: in.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Collection: "user", Key: in.Username}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), a.cost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if in.Role == models.RoleCustomer {
		user.Email = strings.TrimSpace(in.Email)
		if user.Email == "" {
			user.Email = in.Username
		}
	}

	if err := a.stg.Users().Insert(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, &ConflictError{Collection: "user", Key: in.Username}
		}
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"username": user.Username, "role": user.Role}).Info("user registered")
	return &user, nil
}

// Authenticate returns NotFoundError both for an unknown username and for a
// wrong password.
func (a *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.stg.Users().FindOne(ctx, store.Filter{models.FieldUsername: strings.TrimSpace(username)})
	if err != nil {
		metrics.RecordAuthAttempt("error")
		return nil, err
	}
	if user == nil {
		metrics.RecordAuthAttempt("unknown_user")
		return nil, &NotFoundError{Collection: "user", Key: username}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.RecordAuthAttempt("bad_password")
		return nil, &NotFoundError{Collection: "user", Key: username}
	}
	metrics.RecordAuthAttempt("ok")
	return user, nil
}

// SessionFor builds the session a successful login starts.
func SessionFor(u *models.User) Session {
	return Session{Username: u.Username, Role: u.Role, Email: u.Email}
}
