package prompt

import (
	"strings"
	"text/template"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
)

// Mode selects which prompt the builder renders
type Mode string

const (
	ModeGenerate     Mode = "generate"
	ModeRandom       Mode = "random"
	ModeEvaluate     Mode = "evaluate"
	ModeRevise       Mode = "revise"
	ModeLengthRetry  Mode = "length_retry"
	ModeGatekeep     Mode = "gatekeep"
	ModeDetailsCheck Mode = "details_check"
)

// Modes lists every prompt mode
var Modes = []Mode{
	ModeGenerate, ModeRandom, ModeEvaluate, ModeRevise, ModeLengthRetry, ModeGatekeep, ModeDetailsCheck,
}

// Input carries everything a prompt may interpolate. Each mode reads only
// the fields it needs.
type Input struct {
	Request     models.GenerationRequest
	Random      models.RandomRequest
	Tweet       string
	Feedback    string
	Constraints models.RevisionConstraints
}

// templateData is the flattened view handed to the templates
type templateData struct {
	ProductDetails string
	Style          string
	Structure      string
	Case           string
	URL            string
	Hashtags       string
	Mood           string
	WritingStyle   string
	Topic          string
	Tweet          string
	Feedback       string
	MinLength      int
	MaxLength      int
}

// Builder renders the natural-language prompts sent to the LLM.
// User text is interpolated verbatim, there is no escaping.
type Builder struct {
	loader    *Loader
	templates map[Mode]*template.Template
}

// NewPromptBuilder parses all embedded templates
func NewPromptBuilder() *Builder {
	loader := NewPromptLoader()
	templates := make(map[Mode]*template.Template, len(Modes))
	for _, mode := range Modes {
		text, err := loader.GetTemplate(mode)
		if err != nil {
			panic(err)
		}
		templates[mode] = template.Must(template.New(string(mode)).Parse(text))
	}
	return &Builder{loader: loader, templates: templates}
}

// Build renders the prompt for mode. It never fails: an unknown mode or a
// render error yields an empty string and a logged warning.
func (b *Builder) Build(mode Mode, in Input) string {
	tmpl, ok := b.templates[mode]
	if !ok {
		logger.Warn("Unknown prompt mode", logger.Fields{"mode": string(mode)})
		return ""
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, dataFor(mode, in)); err != nil {
		logger.Warn("Prompt render failed", logger.Fields{"mode": string(mode), "error": err.Error()})
		return ""
	}
	return strings.TrimSpace(sb.String())
}

func dataFor(mode Mode, in Input) templateData {
	switch mode {
	case ModeGenerate:
		req := in.Request
		tweetType, _ := models.ParseTweetType(req.TweetType)
		return templateData{
			ProductDetails: req.ProductDetails,
			Style:          tweetType.StyleDescription(),
			Structure:      models.ParseStructure(req.StructurePreference).Instruction(),
			Case:           models.ParseCase(req.CasePreference).Instruction(),
			URL:            models.URLInstruction(req.URL),
			Hashtags:       models.HashtagInstruction(req.IncludeHashtags),
		}

	case ModeRandom:
		req := in.Random
		mood, _ := models.ParseMood(req.Mood)
		style, _ := models.ParseWritingStyle(req.Style)
		topic, _ := models.ParseTopic(req.TweetType)
		maxLength := req.Length
		if maxLength <= 0 {
			maxLength = models.TweetMaxLength
		}
		return templateData{
			Mood:         mood.Description(),
			WritingStyle: style.Description(),
			Topic:        topic.Description(),
			MaxLength:    maxLength,
			Structure:    models.ParseStructure(req.Structure).Instruction(),
			Hashtags:     models.HashtagInstruction(req.Hashtags),
		}

	case ModeRevise, ModeLengthRetry:
		data := templateData{
			Tweet:     in.Tweet,
			Feedback:  in.Feedback,
			Structure: in.Constraints.Structure.Instruction(),
			Hashtags:  models.HashtagInstruction(in.Constraints.HashtagsAllowed),
		}
		if minLength, maxLength, ok := in.Constraints.LengthBand(); ok {
			data.MinLength, data.MaxLength = minLength, maxLength
		} else if mode == ModeLengthRetry {
			data.MinLength, data.MaxLength = models.TweetMinLength, models.TweetMaxLength
		}
		return data

	case ModeDetailsCheck:
		return templateData{ProductDetails: in.Request.ProductDetails}

	default:
		return templateData{Tweet: in.Tweet}
	}
}
