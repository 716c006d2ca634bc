package models

import "strings"

// TweetType selects the writing style of a product tweet
type TweetType string

const (
	TweetTypeCTA           TweetType = "CTA"
	TweetTypeCasual        TweetType = "Casual"
	TweetTypeEducational   TweetType = "Educational"
	TweetTypeFunny         TweetType = "Funny"
	TweetTypeInspirational TweetType = "Inspirational"
	TweetTypeViral         TweetType = "Viral"
	TweetTypeControversial TweetType = "Controversial"
	TweetTypeStorytelling  TweetType = "Storytelling"
)

// TweetTypes lists every supported tweet type
var TweetTypes = []TweetType{
	TweetTypeCTA,
	TweetTypeCasual,
	TweetTypeEducational,
	TweetTypeFunny,
	TweetTypeInspirational,
	TweetTypeViral,
	TweetTypeControversial,
	TweetTypeStorytelling,
}

// ParseTweetType maps a request key onto a TweetType.
// Unknown keys fall back to CTA and report false.
func ParseTweetType(key string) (TweetType, bool) {
	for _, t := range TweetTypes {
		if string(t) == key {
			return t, true
		}
	}
	return TweetTypeCTA, false
}

// StyleDescription returns the style instruction for the tweet type
func (t TweetType) StyleDescription() string {
	switch t {
	case TweetTypeCasual:
		return "Write in a fun, relaxed, and friendly tone."
	case TweetTypeEducational:
		return "Share an insightful or informative tweet about the product."
	case TweetTypeFunny:
		return "Make it witty and humorous while still being relevant."
	case TweetTypeInspirational:
		return "Write something motivating and uplifting about the product."
	case TweetTypeViral:
		return "Craft it to spread fast: open with a scroll-stopping hook and use a format people love to share."
	case TweetTypeControversial:
		return "Take a bold, debatable stance about the problem the product solves. Spark discussion but stay respectful."
	case TweetTypeStorytelling:
		return "Tell a tiny story with a beginning, middle, and end where the product is the turning point."
	case TweetTypeCTA:
		fallthrough
	default:
		return "Focus on a strong call-to-action, encouraging engagement or sign-ups."
	}
}

// Structure is the preferred tweet shape
type Structure string

const (
	StructureNone  Structure = ""
	StructureShort Structure = "short"
	StructureLong  Structure = "long"
)

// ParseStructure is case-insensitive; unknown keys yield StructureNone
func ParseStructure(key string) Structure {
	switch Structure(strings.ToLower(strings.TrimSpace(key))) {
	case StructureShort:
		return StructureShort
	case StructureLong:
		return StructureLong
	default:
		return StructureNone
	}
}

// Instruction returns the prompt fragment for the structure, empty when unset
func (s Structure) Instruction() string {
	switch s {
	case StructureShort:
		return "Keep it short and punchy: a single line, ideally under 140 characters."
	case StructureLong:
		return "Use a longer, multi-line format that makes full use of the character limit."
	default:
		return ""
	}
}

// Case is the preferred letter casing of the tweet
type Case string

const (
	CaseNone        Case = ""
	CaseNormal      Case = "normal"
	CaseLowercase   Case = "lowercase"
	CaseUppercase   Case = "uppercase"
	CaseSentence    Case = "sentence"
	CaseTitle       Case = "title"
	CaseAlternating Case = "alternating"
)

var cases = []Case{CaseNormal, CaseLowercase, CaseUppercase, CaseSentence, CaseTitle, CaseAlternating}

// ParseCase is case-insensitive; unknown keys yield CaseNone
func ParseCase(key string) Case {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range cases {
		if string(c) == key {
			return c
		}
	}
	return CaseNone
}

// Instruction returns the prompt fragment for the casing, empty when unset
func (c Case) Instruction() string {
	switch c {
	case CaseNormal:
		return "Use normal, natural capitalization."
	case CaseLowercase:
		return "Write the entire tweet in lowercase letters."
	case CaseUppercase:
		return "Write the entire tweet in UPPERCASE letters."
	case CaseSentence:
		return "Use sentence case: capitalize only the first letter of each sentence."
	case CaseTitle:
		return "Use Title Case: Capitalize The First Letter Of Every Word."
	case CaseAlternating:
		return "Use alternating case, switching between lowercase and uppercase letters, lIkE tHiS."
	default:
		return ""
	}
}

// HashtagInstruction returns the hashtag policy fragment
func HashtagInstruction(allowed bool) string {
	if allowed {
		return "Include 1-2 relevant hashtags."
	}
	return "Do not include hashtags."
}

// URLInstruction returns the link fragment, empty when no URL was given
func URLInstruction(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	return "Include this link exactly once: " + url
}

// Mood is the emotional register of a random tweet
type Mood string

const (
	MoodHappy         Mood = "happy"
	MoodFunny         Mood = "funny"
	MoodSarcastic     Mood = "sarcastic"
	MoodMotivational  Mood = "motivational"
	MoodControversial Mood = "controversial"
	MoodPhilosophical Mood = "philosophical"
)

var moods = []Mood{MoodHappy, MoodFunny, MoodSarcastic, MoodMotivational, MoodControversial, MoodPhilosophical}

// ParseMood falls back to happy for unknown keys
func ParseMood(key string) (Mood, bool) {
	for _, m := range moods {
		if string(m) == key {
			return m, true
		}
	}
	return MoodHappy, false
}

// Description returns the mood instruction
func (m Mood) Description() string {
	switch m {
	case MoodFunny:
		return "Use humor and wit to engage the audience. Include punchlines, puns, or clever wordplay."
	case MoodSarcastic:
		return "Convey a playful, ironic tone. Use subtle sarcasm to make it relatable and entertaining."
	case MoodMotivational:
		return "Inspire and uplift the reader. Use powerful, action-oriented language."
	case MoodControversial:
		return "Challenge opinions and spark discussion. Be bold but respectful."
	case MoodPhilosophical:
		return "Encourage deep thinking and reflection. Use thought-provoking questions or statements."
	case MoodHappy:
		fallthrough
	default:
		return "Express joy and positivity in your message. Use uplifting and optimistic language."
	}
}

// WritingStyle is the delivery style of a random tweet
type WritingStyle string

const (
	WritingStyleViral        WritingStyle = "viral"
	WritingStyleTrendy       WritingStyle = "trendy"
	WritingStyleCasual       WritingStyle = "casual"
	WritingStyleProfessional WritingStyle = "professional"
	WritingStyleStorytelling WritingStyle = "storytelling"
)

var writingStyles = []WritingStyle{
	WritingStyleViral, WritingStyleTrendy, WritingStyleCasual, WritingStyleProfessional, WritingStyleStorytelling,
}

// ParseWritingStyle falls back to casual for unknown keys
func ParseWritingStyle(key string) (WritingStyle, bool) {
	for _, s := range writingStyles {
		if string(s) == key {
			return s, true
		}
	}
	return WritingStyleCasual, false
}

// Description returns the style instruction
func (s WritingStyle) Description() string {
	switch s {
	case WritingStyleViral:
		return "Craft content with the potential to spread quickly and widely. Use hooks, emotional triggers, and trending formats."
	case WritingStyleTrendy:
		return "Tap into current trends, memes, and popular culture. Make it relevant and timely."
	case WritingStyleProfessional:
		return "Maintain a formal, authoritative style. Use data, facts, and clear insights."
	case WritingStyleStorytelling:
		return "Engage readers by narrating relatable or impactful stories. Use a beginning, middle, and end."
	case WritingStyleCasual:
		fallthrough
	default:
		return "Use a relaxed, friendly, and approachable tone. Write like you're talking to a friend."
	}
}

// Topic is the subject area of a random tweet
type Topic string

const (
	TopicTech          Topic = "Tech"
	TopicLife          Topic = "Life"
	TopicSuccess       Topic = "Success"
	TopicRelationships Topic = "Relationships"
	TopicMoney         Topic = "Money"
	TopicCreativity    Topic = "Creativity"
	TopicGrowth        Topic = "Growth"
	TopicWisdom        Topic = "Wisdom"
	TopicHumor         Topic = "Humor"
	TopicCulture       Topic = "Culture"
)

var topics = []Topic{
	TopicTech, TopicLife, TopicSuccess, TopicRelationships, TopicMoney,
	TopicCreativity, TopicGrowth, TopicWisdom, TopicHumor, TopicCulture,
}

// ParseTopic falls back to Humor for unknown keys
func ParseTopic(key string) (Topic, bool) {
	for _, t := range topics {
		if string(t) == key {
			return t, true
		}
	}
	return TopicHumor, false
}

// Description returns the topic instruction
func (t Topic) Description() string {
	switch t {
	case TopicTech:
		return "Discuss innovations, gadgets, and software trends. Highlight how it impacts daily life or the future."
	case TopicLife:
		return "Share personal experiences, routines, and reflections. Make it relatable and authentic."
	case TopicSuccess:
		return "Explore achievements, goals, and strategies for growth. Inspire action and ambition."
	case TopicRelationships:
		return "Talk about connections, friendships, and love. Use emotional triggers to resonate with readers."
	case TopicMoney:
		return "Cover finances, investments, and wealth-building tips. Provide actionable advice or insights."
	case TopicCreativity:
		return "Highlight artistic expression and creative thinking. Encourage readers to think outside the box."
	case TopicGrowth:
		return "Focus on personal development and self-improvement. Share practical tips or mindset shifts."
	case TopicWisdom:
		return "Share timeless advice and thought-provoking insights. Make it concise and impactful."
	case TopicCulture:
		return "Examine societal trends, traditions, and pop culture. Make it relevant and engaging."
	case TopicHumor:
		fallthrough
	default:
		return "Deliver lighthearted jokes, memes, and funny observations. Keep it fresh and original."
	}
}
