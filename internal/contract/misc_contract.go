package contract

type SubjectResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
