package embedded

import (
	_ "embed"
)

// Embed all prompt templates
//
//go:embed data/prompts/generate.tmpl
var GeneratePromptTmpl []byte

//go:embed data/prompts/random.tmpl
var RandomPromptTmpl []byte

//go:embed data/prompts/evaluate.tmpl
var EvaluatePromptTmpl []byte

//go:embed data/prompts/revise.tmpl
var RevisePromptTmpl []byte

//go:embed data/prompts/length_retry.tmpl
var LengthRetryPromptTmpl []byte

//go:embed data/prompts/gatekeep.tmpl
var GatekeepPromptTmpl []byte

//go:embed data/prompts/details_check.tmpl
var DetailsCheckPromptTmpl []byte
