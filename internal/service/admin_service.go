package service

import (
	"studyboard/internal/domain/entity"
	"studyboard/internal/domain/policy"
	"studyboard/internal/utils"
	"studyboard/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type SetAdminRequest struct {
	Username string `json:"username" validate:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type SetAdminResponse struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type AdminService struct {
	UserRepo UserRepo
	Policy   *policy.ContentPolicy
	Validate *validator.Validate
}

// UserRepo is the slice of the user repository the admin service needs.
type UserRepo interface {
	FindByUsername(username string) (*entity.User, error)
	SetAdmin(user *entity.User, isAdmin bool) error
}

func NewAdminService(userRepo UserRepo, contentPolicy *policy.ContentPolicy, validate *validator.Validate) *AdminService {
	return &AdminService{
		UserRepo: userRepo,
		Policy:   contentPolicy,
		Validate: validate,
	}
}

// SetAdmin flips another user's admin flag. Only admins get past the
// policy; this is the sole path that ever changes is_admin.
func (a *AdminService) SetAdmin(actor *entity.User, req *SetAdminRequest) (*SetAdminResponse, apierror.ErrorResponse) {
	if perr := a.Policy.RequireAdmin(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	target, err := a.UserRepo.FindByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to fetch user %s: %v", req.Username, err)
		return nil, apierror.InternalServerError
	}

	if target == nil {
		return nil, apierror.NotFoundError
	}

	if err := a.UserRepo.SetAdmin(target, req.IsAdmin); err != nil {
		log.Errorf("failed to set admin flag for user %d: %v", target.ID, err)
		return nil, apierror.InternalServerError
	}

	return &SetAdminResponse{Username: target.Username, IsAdmin: req.IsAdmin}, nil
}
