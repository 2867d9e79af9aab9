package contract

type PostRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content" validate:"required,min=1,max=10000"`
	SubjectID int64  `json:"subject_id" validate:"required,gt=0"`
}

// PostQuery carries the composable listing filters parsed from the
// query string. Zero values disable the corresponding filter.
type PostQuery struct {
	SubjectID int64
	Search    string
	Username  string
	Sort      string
}

type PostResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id"`
	Author     string `json:"author"`
	SubjectID  int64  `json:"subject_id"`
	ReplyCount int64  `json:"reply_count"`
	CreatedAt  string `json:"created_at"`
}
