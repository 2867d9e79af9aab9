package handler

import (
	"net/http"

	"studyboard/internal/domain/entity"
	"studyboard/internal/service"
	"studyboard/internal/utils"
	"studyboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AdminService interface {
	SetAdmin(actor *entity.User, req *service.SetAdminRequest) (*service.SetAdminResponse, apierror.ErrorResponse)
}

type DefaultAdminRoute struct {
	AdminService AdminService
}

func NewAdminDefault(adminService AdminService) *DefaultAdminRoute {
	return &DefaultAdminRoute{AdminService: adminService}
}

func (a *DefaultAdminRoute) SetAdmin(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req service.SetAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AdminService.SetAdmin(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
