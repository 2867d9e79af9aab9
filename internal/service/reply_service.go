package service

import (
	"studyboard/internal/contract"
	"studyboard/internal/domain/entity"
	"studyboard/internal/domain/policy"
	"studyboard/internal/utils"
	"studyboard/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ReplyRepository interface {
	FindByID(id int64) (*entity.Reply, error)
	FindByPostID(postID int64) ([]*entity.Reply, error)
	FindByUsername(username string) ([]*entity.Reply, error)
	Create(reply *entity.Reply) error
	Delete(reply *entity.Reply) error
}

type ReplyService struct {
	ReplyRepo ReplyRepository
	PostRepo  PostRepository
	Policy    *policy.ContentPolicy
	Validate  *validator.Validate
}

func NewReplyService(replyRepo ReplyRepository, postRepo PostRepository, contentPolicy *policy.ContentPolicy, validate *validator.Validate) *ReplyService {
	return &ReplyService{
		ReplyRepo: replyRepo,
		PostRepo:  postRepo,
		Policy:    contentPolicy,
		Validate:  validate,
	}
}

// ListByPost returns a post's replies in thread order (oldest first).
// An unknown post id simply yields an empty list.
func (r *ReplyService) ListByPost(postID int64) ([]*contract.ReplyResponse, apierror.ErrorResponse) {
	replies, err := r.ReplyRepo.FindByPostID(postID)
	if err != nil {
		log.Errorf("failed to list replies of post %d: %v", postID, err)
		return nil, apierror.InternalServerError
	}
	return toReplyResponses(replies), nil
}

func (r *ReplyService) ListByUsername(username string) ([]*contract.ReplyResponse, apierror.ErrorResponse) {
	replies, err := r.ReplyRepo.FindByUsername(username)
	if err != nil {
		log.Errorf("failed to list replies of user %s: %v", username, err)
		return nil, apierror.InternalServerError
	}
	return toReplyResponses(replies), nil
}

func (r *ReplyService) CreateReply(actor *entity.User, postID int64, req *contract.ReplyRequest) (*contract.ReplyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := r.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	post, err := r.PostRepo.FindByID(postID)
	if err != nil {
		log.Errorf("failed to fetch post %d: %v", postID, err)
		return nil, apierror.InternalServerError
	}

	if post == nil {
		return nil, apierror.UnknownPostError
	}

	reply := &entity.Reply{
		PostID:    post.ID,
		Content:   req.Content,
		AuthorID:  actor.ID,
		Author:    actor.Username,
		CreatedAt: utils.NowUTC(),
	}

	if err := r.ReplyRepo.Create(reply); err != nil {
		log.Errorf("failed to save reply: %v", err)
		return nil, apierror.InternalServerError
	}
	return toReplyResponse(reply), nil
}

func (r *ReplyService) DeleteReply(actor *entity.User, id int64) apierror.ErrorResponse {
	reply, err := r.ReplyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch reply %d: %v", id, err)
		return apierror.InternalServerError
	}

	if reply == nil {
		return apierror.NotFoundError
	}

	if perr := r.Policy.CanMutate(actor, reply.AuthorID); perr != nil {
		return perr
	}

	if err := r.ReplyRepo.Delete(reply); err != nil {
		log.Errorf("failed to delete reply %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toReplyResponses(replies []*entity.Reply) []*contract.ReplyResponse {
	resp := make([]*contract.ReplyResponse, len(replies))
	for i, reply := range replies {
		resp[i] = toReplyResponse(reply)
	}
	return resp
}

func toReplyResponse(reply *entity.Reply) *contract.ReplyResponse {
	return &contract.ReplyResponse{
		ID:        reply.ID,
		PostID:    reply.PostID,
		Content:   reply.Content,
		AuthorID:  reply.AuthorID,
		Author:    reply.Author,
		CreatedAt: utils.FormatEpoch(reply.CreatedAt),
	}
}
