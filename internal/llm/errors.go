package llm

import (
	"errors"
	"fmt"
)

// FailureReason classifies a failed generation
type FailureReason string

const (
	ReasonProviderUnavailable FailureReason = "ProviderUnavailable"
	ReasonEmptyResponse       FailureReason = "EmptyResponse"
)

// GenerationError is returned by Client.Generate when no usable text was produced
type GenerationError struct {
	Reason   FailureReason
	Provider string
	Stage    string
	Err      error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("%s generation failed (%s)", e.Provider, e.Reason)
	if e.Stage != "" {
		msg += " during " + e.Stage
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether err carries a GenerationError
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// errEmptyOutput is wrapped by providers when the model returned no text
var errEmptyOutput = errors.New("model returned no output text")
