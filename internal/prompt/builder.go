package prompt

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/phrazzld/seogen-api/internal/task"
)

// Placeholder tokens recognised in the external article template.
const (
	PlaceholderTitle        = "[body.title]"
	PlaceholderTitleSlug    = "[body.titleSlug]"
	PlaceholderDate         = "[YYYY-MM-DD]"
	PlaceholderCategory     = "[body.category]"
	PlaceholderCategorySlug = "[body.categorySlug]"
	PlaceholderCurrentTitle = "[Current Article Title]"
)

// DateLayout is the format substituted for PlaceholderDate.
const DateLayout = "2006-01-02"

const markdownOnlyInstruction = "\n\nImportant: Only return the article content in Markdown format. " +
	"Do not include any schema, JSON, or other metadata formats. " +
	"The response should start with the front matter (---) and end with the article content."

//go:embed templates/title_expansion.tmpl
var titleExpansionTemplate string

var (
	// ErrEmptyArticleTemplate is returned when no article template is configured.
	ErrEmptyArticleTemplate = errors.New("article prompt template cannot be empty")

	// ErrInputMismatch is returned when the input type does not belong to the task.
	ErrInputMismatch = errors.New("input does not match task")
)

// titleData is passed to the title-expansion template.
type titleData struct {
	SiteDescription string
	Data            string
}

// Builder renders task prompts.
type Builder struct {
	articleTemplate string
	titleTemplate   *template.Template
	now             func() time.Time
	logger          *slog.Logger
}

// Option customises a Builder.
type Option func(*Builder)

// WithClock overrides the clock used for the current-date placeholder.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a Builder using articleTemplate as the external article
// prompt.
func NewBuilder(logger *slog.Logger, articleTemplate string, opts ...Option) (*Builder, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(articleTemplate) == "" {
		return nil, ErrEmptyArticleTemplate
	}

	tmpl, err := template.New("title_expansion").Parse(titleExpansionTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse title expansion template: %w", err)
	}

	b := &Builder{
		articleTemplate: articleTemplate,
		titleTemplate:   tmpl,
		now:             time.Now,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Build validates input and renders the prompt for the given task.
func (b *Builder) Build(ctx context.Context, id task.ID, input any) (string, error) {
	switch id {
	case task.TitleExpansion:
		in, ok := input.(*task.TitleExpansionInput)
		if !ok {
			return "", fmt.Errorf("%w: %s got %T", ErrInputMismatch, id, input)
		}
		return b.BuildTitleExpansion(ctx, in)
	case task.ArticleGeneration:
		in, ok := input.(*task.ArticleInput)
		if !ok {
			return "", fmt.Errorf("%w: %s got %T", ErrInputMismatch, id, input)
		}
		return b.BuildArticle(ctx, in)
	default:
		return "", fmt.Errorf("%w: %q", task.ErrUnknownTask, id)
	}
}

// BuildTitleExpansion renders the fixed title-expansion prompt.
func (b *Builder) BuildTitleExpansion(ctx context.Context, in *task.TitleExpansionInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	data, err := in.DataText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := b.titleTemplate.Execute(&buf, titleData{
		SiteDescription: in.SiteDescription,
		Data:            data,
	}); err != nil {
		return "", fmt.Errorf("failed to execute title expansion template: %w", err)
	}

	prompt := buf.String()
	b.logger.DebugContext(ctx, "title expansion prompt built",
		"data_length", len(data),
		"prompt_length", len(prompt))

	return prompt, nil
}

// BuildArticle substitutes the article fields into the external template and
// appends the output-format and category instructions.
//
// Replacement is literal and happens in a fixed order: title, title slug,
// date, category, category slug, current article title.
func (b *Builder) BuildArticle(ctx context.Context, in *task.ArticleInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	d := in.JSONData
	today := b.now().UTC().Format(DateLayout)

	prompt := b.articleTemplate
	for _, r := range [...]struct{ token, value string }{
		{PlaceholderTitle, d.Title},
		{PlaceholderTitleSlug, d.TitleSlug},
		{PlaceholderDate, today},
		{PlaceholderCategory, d.Category},
		{PlaceholderCategorySlug, d.CategorySlug},
		{PlaceholderCurrentTitle, d.Title},
	} {
		prompt = strings.ReplaceAll(prompt, r.token, r.value)
	}

	prompt += markdownOnlyInstruction
	prompt += "\n\nCategory Information:\n- The article MUST be categorized under: " + d.Category +
		"\n- The category slug MUST be: " + d.CategorySlug +
		"\n- Do not modify or change these values in the generated content."

	b.logger.DebugContext(ctx, "article prompt built",
		"title_slug", d.TitleSlug,
		"prompt_length", len(prompt))

	return prompt, nil
}
