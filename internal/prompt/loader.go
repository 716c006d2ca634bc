package prompt

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/tweetcraft-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetTemplate loads the raw template text for a prompt mode
func (l *Loader) GetTemplate(mode Mode) (string, error) {
	var raw []byte
	switch mode {
	case ModeGenerate:
		raw = embedded.GeneratePromptTmpl
	case ModeRandom:
		raw = embedded.RandomPromptTmpl
	case ModeEvaluate:
		raw = embedded.EvaluatePromptTmpl
	case ModeRevise:
		raw = embedded.RevisePromptTmpl
	case ModeLengthRetry:
		raw = embedded.LengthRetryPromptTmpl
	case ModeGatekeep:
		raw = embedded.GatekeepPromptTmpl
	case ModeDetailsCheck:
		raw = embedded.DetailsCheckPromptTmpl
	default:
		return "", fmt.Errorf("unknown prompt mode: %s", mode)
	}
	return strings.TrimSpace(string(raw)), nil
}
