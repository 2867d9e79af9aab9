package service

import (
	"studyboard/internal/contract"
	"studyboard/internal/domain/entity"
	"studyboard/internal/domain/policy"
	"studyboard/internal/domain/sqlite/repository"
	"studyboard/internal/utils"
	"studyboard/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PostRepository interface {
	Search(f *repository.PostFilter) ([]*repository.PostRow, error)
	FindByID(id int64) (*repository.PostRow, error)
	Create(post *entity.Post) error
	DeleteWithReplies(id int64) (bool, error)
}

type SubjectRepository interface {
	FindAll() ([]*entity.Subject, error)
	FindByID(id int64) (*entity.Subject, error)
}

type PostService struct {
	PostRepo    PostRepository
	SubjectRepo SubjectRepository
	Policy      *policy.ContentPolicy
	Validate    *validator.Validate
}

func NewPostService(postRepo PostRepository, subjectRepo SubjectRepository, contentPolicy *policy.ContentPolicy, validate *validator.Validate) *PostService {
	return &PostService{
		PostRepo:    postRepo,
		SubjectRepo: subjectRepo,
		Policy:      contentPolicy,
		Validate:    validate,
	}
}

func (p *PostService) ListPosts(q *contract.PostQuery) ([]*contract.PostResponse, apierror.ErrorResponse) {
	filter := &repository.PostFilter{
		SubjectID: q.SubjectID,
		Search:    q.Search,
		Username:  q.Username,
		Sort:      q.Sort,
	}

	rows, err := p.PostRepo.Search(filter)
	if err != nil {
		log.Errorf("failed to list posts: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.PostResponse, len(rows))
	for i, row := range rows {
		resp[i] = toPostResponse(row)
	}
	return resp, nil
}

func (p *PostService) GetPost(id int64) (*contract.PostResponse, apierror.ErrorResponse) {
	row, err := p.PostRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch post %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if row == nil {
		return nil, apierror.NotFoundError
	}
	return toPostResponse(row), nil
}

// CreatePost stamps the post with the actor's id and display name; the
// body cannot claim a different author.
func (p *PostService) CreatePost(actor *entity.User, req *contract.PostRequest) (*contract.PostResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	subject, err := p.SubjectRepo.FindByID(req.SubjectID)
	if err != nil {
		log.Errorf("failed to fetch subject %d: %v", req.SubjectID, err)
		return nil, apierror.InternalServerError
	}

	if subject == nil {
		return nil, apierror.UnknownSubjectError
	}

	post := &entity.Post{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  actor.ID,
		Author:    actor.Username,
		SubjectID: subject.ID,
		CreatedAt: utils.NowUTC(),
	}

	if err := p.PostRepo.Create(post); err != nil {
		log.Errorf("failed to save post: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPostResponse(&repository.PostRow{Post: *post}), nil
}

// DeletePost removes a post and its replies. Only the author or an
// admin may do this; the ownership check and the delete target the same
// row by id, and the cascade runs in a single transaction.
func (p *PostService) DeletePost(actor *entity.User, id int64) apierror.ErrorResponse {
	row, err := p.PostRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch post %d: %v", id, err)
		return apierror.InternalServerError
	}

	if row == nil {
		return apierror.NotFoundError
	}

	if perr := p.Policy.CanMutate(actor, row.AuthorID); perr != nil {
		return perr
	}

	deleted, err := p.PostRepo.DeleteWithReplies(id)
	if err != nil {
		log.Errorf("failed to delete post %d: %v", id, err)
		return apierror.InternalServerError
	}

	if !deleted {
		return apierror.NotFoundError
	}
	return nil
}

func toPostResponse(row *repository.PostRow) *contract.PostResponse {
	return &contract.PostResponse{
		ID:         row.ID,
		Title:      row.Title,
		Content:    row.Content,
		AuthorID:   row.AuthorID,
		Author:     row.Author,
		SubjectID:  row.SubjectID,
		ReplyCount: row.ReplyCount,
		CreatedAt:  utils.FormatEpoch(row.CreatedAt),
	}
}
