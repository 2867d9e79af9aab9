package handler

import (
	"net/http"

	"studyboard/internal/contract"
	"studyboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SubjectService interface {
	ListSubjects() ([]*contract.SubjectResponse, apierror.ErrorResponse)
}

type DefaultSubjectRoute struct {
	SubjectService SubjectService
}

func NewSubjectDefault(subjectService SubjectService) *DefaultSubjectRoute {
	return &DefaultSubjectRoute{SubjectService: subjectService}
}

func (s *DefaultSubjectRoute) GetSubjects(c echo.Context) error {
	subjects, apierr := s.SubjectService.ListSubjects()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, subjects)
}
