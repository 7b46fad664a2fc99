package commands

// Response is the envelope every command answers with.
// Exactly one of Data and Error is set.
type Response[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Error   *string `json:"error"`
}

func Success[T any](data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    &data,
	}
}

func Failure[T any](err error) Response[T] {
	message := err.Error()
	return Response[T]{
		Success: false,
		Error:   &message,
	}
}
