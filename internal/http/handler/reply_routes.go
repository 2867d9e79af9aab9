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

type ReplyService interface {
	ListByPost(postID int64) ([]*contract.ReplyResponse, apierror.ErrorResponse)
	ListByUsername(username string) ([]*contract.ReplyResponse, apierror.ErrorResponse)
	CreateReply(actor *entity.User, postID int64, req *contract.ReplyRequest) (*contract.ReplyResponse, apierror.ErrorResponse)
	DeleteReply(actor *entity.User, id int64) apierror.ErrorResponse
}

type DefaultReplyRoute struct {
	ReplyService ReplyService
}

func NewReplyDefault(replyService ReplyService) *DefaultReplyRoute {
	return &DefaultReplyRoute{ReplyService: replyService}
}

func (r *DefaultReplyRoute) GetPostReplies(c echo.Context) error {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	replies, apierr := r.ReplyService.ListByPost(postID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, replies)
}

func (r *DefaultReplyRoute) GetReplies(c echo.Context) error {
	username := strings.TrimSpace(c.QueryParam("user"))
	if username == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("user"))
	}

	replies, apierr := r.ReplyService.ListByUsername(username)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, replies)
}

func (r *DefaultReplyRoute) CreateReply(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	var req contract.ReplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reply, apierr := r.ReplyService.CreateReply(user, postID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, reply)
}

func (r *DefaultReplyRoute) DeleteReply(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, apierror.NotFoundError)
	}

	if apierr := r.ReplyService.DeleteReply(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
