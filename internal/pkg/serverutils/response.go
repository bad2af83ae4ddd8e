package serverutils

type BaseResponse[T any] struct {
	Success bool              `json:"success"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// PaginatedData is the data payload of every list endpoint.
type PaginatedData[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

func ValidationErrorResponse(fields map[string]string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    422,
		Message: "Validation failed",
		Errors:  fields,
	}
}

func Paginated[T any](items []T, page, limit int, total int64) PaginatedData[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedData[T]{Items: items, Page: page, Limit: limit, Total: total}
}
