package service

import (
	"errors"
	"net/http"
	"time"

	"studyboard/internal/domain/entity"
	"studyboard/internal/domain/sqlite/repository"
	"studyboard/internal/utils"
	"studyboard/internal/utils/apierror"
	"studyboard/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Matches the work factor the original deployment used.
	passwordHashCost = 10

	// bcrypt reads at most 72 bytes. The validator's max tag counts
	// runes, so multibyte passwords need a separate byte check.
	passwordMaxBytes = 72

	sessionTTL = 7 * 24 * time.Hour
)

// dummyHash is compared against when the username does not exist, so the
// unknown-username and wrong-password paths cost roughly the same and
// neither the error nor the timing reveals which part was wrong.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type UserRepository interface {
	FindByID(id int64) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Create(user *entity.User) error
	SetAdmin(user *entity.User, isAdmin bool) error
}

type SessionRepository interface {
	Create(session *entity.Session) error
	DeleteByTokenHash(hash string) error
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user. There is deliberately no
// password hash field here.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type AuthService struct {
	UserRepo    UserRepository
	SessionRepo SessionRepository
	Validate    *validator.Validate
}

func NewAuthService(userRepo UserRepository, sessionRepo SessionRepository, validate *validator.Validate) *AuthService {
	return &AuthService{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Validate:    validate,
	}
}

// Register creates a new user. Uniqueness of username and email is
// enforced by the insert itself, never by a pre-check. New users are
// never admins, whatever the request body may claim.
func (a *AuthService) Register(req *RegisterRequest) (*UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if len(req.Password) > passwordMaxBytes {
		resp := apierror.NewStructured(http.StatusBadRequest)
		resp.Add("password", "Value is too long, max: 72 bytes")
		return nil, resp
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    utils.NowUTC(),
	}

	if err := a.UserRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, apierror.DuplicateUserError
		}
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(user), nil
}

// Login verifies the credentials and issues an opaque session token.
// Unknown usernames and wrong passwords return the identical error.
func (a *AuthService) Login(req *LoginRequest) (*LoginResponse, apierror.ErrorResponse) {
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := a.UserRepo.FindByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return nil, apierror.InvalidCredentialsError
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierror.InvalidCredentialsError
	}

	token, apierr := a.issueSession(user)
	if apierr != nil {
		return nil, apierr
	}

	return &LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Logout revokes the presented session. Revoking an unknown token is a
// no-op; the client ends up logged out either way.
func (a *AuthService) Logout(token string) apierror.ErrorResponse {
	if err := a.SessionRepo.DeleteByTokenHash(utils.HashToken(token)); err != nil {
		log.Errorf("failed to delete session: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// issueSession stores a new server-held session and returns the clear
// token. The token carries no user attributes; it is only a reference
// the middleware resolves back to a user row.
func (a *AuthService) issueSession(user *entity.User) (string, apierror.ErrorResponse) {
	token := uuid.NewString()
	now := utils.NowUTC()

	session := &entity.Session{
		ID:        uid.Generate(),
		TokenHash: utils.HashToken(token),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now + sessionTTL.Milliseconds(),
	}

	if err := a.SessionRepo.Create(session); err != nil {
		log.Errorf("failed to store session for user %d: %v", user.ID, err)
		return "", apierror.InternalServerError
	}
	return token, nil
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}
