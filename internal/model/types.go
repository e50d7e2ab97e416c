package model

// QueryRequest is the body of POST /query. Query is a pointer so that a
// missing field can be told apart from an empty question.
type QueryRequest struct {
	Query *string `json:"query" validate:"required"`
}

type QueryResponse struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries either a plain message or a list of ValidationIssue.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

type ValidationIssue struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}
