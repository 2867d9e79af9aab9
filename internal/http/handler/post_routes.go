package handler

import (
	"net/http"
	"strconv"
	"strings"

	"studyboard/internal/contract"
	"studyboard/internal/domain/entity"
	"studyboard/internal/utils"
	"studyboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PostService interface {
	ListPosts(q *contract.PostQuery) ([]*contract.PostResponse, apierror.ErrorResponse)
	GetPost(id int64) (*contract.PostResponse, apierror.ErrorResponse)
	CreatePost(actor *entity.User, req *contract.PostRequest) (*contract.PostResponse, apierror.ErrorResponse)
	DeletePost(actor *entity.User, id int64) apierror.ErrorResponse
}

type DefaultPostRoute struct {
	PostService PostService
}

func NewPostDefault(postService PostService) *DefaultPostRoute {
	return &DefaultPostRoute{PostService: postService}
}

func (p *DefaultPostRoute) GetPosts(c echo.Context) error {
	query := &contract.PostQuery{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Username: strings.TrimSpace(c.QueryParam("user")),
		Sort:     strings.TrimSpace(c.QueryParam("sort")),
	}

	if raw := c.QueryParam("subject_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("subject_id", "int64"))
		}
		query.SubjectID = id
	}

	posts, apierr := p.PostService.ListPosts(query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, posts)
}

func (p *DefaultPostRoute) GetPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, apierror.NotFoundError)
	}

	post, apierr := p.PostService.GetPost(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, post)
}

func (p *DefaultPostRoute) CreatePost(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.PostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	post, apierr := p.PostService.CreatePost(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, post)
}

func (p *DefaultPostRoute) DeletePost(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, apierror.NotFoundError)
	}

	if apierr := p.PostService.DeletePost(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
