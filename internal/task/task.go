package task

// ID identifies a generation workflow.
type ID string

// Supported workflows. The values are also the HTTP route paths (without the
// leading slash).
const (
	// TitleExpansion generates one new long-tail title per input item.
	TitleExpansion ID = "update-long-tail-titles"

	// ArticleGeneration writes a markdown article for a single title.
	ArticleGeneration ID = "generate-articles-by-new-tail-titles"
)

// DefaultModel is the Gemini model used when configuration does not override it.
const DefaultModel = "gemini-1.5-pro"

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// Path returns the HTTP route serving this workflow.
func (id ID) Path() string {
	return "/" + string(id)
}

// Sampling holds the provider knobs that control randomness and length.
type Sampling struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

// SafetyThreshold is a provider-side content filter for one harm category.
type SafetyThreshold struct {
	Category  string
	Threshold string
}

// Config is the generation configuration bound to a workflow.
type Config struct {
	ID       ID
	Model    string
	Sampling Sampling
	// Safety is applied in order.
	Safety []SafetyThreshold
}

// Harm categories and thresholds understood by Gemini.
const (
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	BlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)
