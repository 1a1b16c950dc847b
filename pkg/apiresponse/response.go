package apiresponse

// Response is the envelope shared by every endpoint.
type Response struct {
	Data       any              `json:"data"`
	StatusCode int              `json:"statusCode"`
	Message    string           `json:"message"`
	Success    bool             `json:"success"`
	Errors     []FieldErrorItem `json:"errors,omitempty"`
	Meta       *PageMeta        `json:"meta,omitempty"`
}

type FieldErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PageMeta struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

func Success(statusCode int, message string, data any) Response {
	return Response{
		Data:       data,
		StatusCode: statusCode,
		Message:    message,
		Success:    true,
	}
}

func Paged(statusCode int, message string, data any, meta PageMeta) Response {
	resp := Success(statusCode, message, data)
	resp.Meta = &meta
	return resp
}

func Failure(statusCode int, message string, errs ...FieldErrorItem) Response {
	return Response{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}
