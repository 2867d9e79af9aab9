package contract

type ReplyRequest struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

type ReplyResponse struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	Content   string `json:"content"`
	AuthorID  int64  `json:"author_id"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}
