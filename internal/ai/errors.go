package ai

import (
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type FailureKind int

const (
	FailUnknown FailureKind = iota
	FailAuth
	FailQuota
	FailBadRequest
	FailNotFound
	FailServer
)

func (k FailureKind) String() string {
	switch k {
	case FailAuth:
		return "invalid API key"
	case FailQuota:
		return "rate limit exceeded"
	case FailBadRequest:
		return "malformed request"
	case FailNotFound:
		return "model not found"
	case FailServer:
		return "provider internal error"
	default:
		return "unknown provider error"
	}
}

// APIError — типизированная ошибка инференса. Kind позволяет хендлерам
// различать классы отказов без разбора текста сообщения.
type APIError struct {
	Kind FailureKind
	Err  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai: %s: %v", e.Kind, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Classify переводит ошибку SDK в APIError по HTTP-статусу.
func Classify(err error) *APIError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 401:
			return &APIError{Kind: FailAuth, Err: err}
		case apiErr.HTTPStatusCode == 404:
			return &APIError{Kind: FailNotFound, Err: err}
		case apiErr.HTTPStatusCode == 429:
			return &APIError{Kind: FailQuota, Err: err}
		case apiErr.HTTPStatusCode == 400:
			return &APIError{Kind: FailBadRequest, Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &APIError{Kind: FailServer, Err: err}
		}
	}
	return &APIError{Kind: FailUnknown, Err: err}
}
