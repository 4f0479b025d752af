package prompt_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/seogen-api/internal/platform/logger"
	"github.com/phrazzld/seogen-api/internal/prompt"
	"github.com/phrazzld/seogen-api/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 11, 5, 23, 30, 0, 0, time.FixedZone("UTC-8", -8*3600))

func newBuilder(t *testing.T, articleTemplate string) *prompt.Builder {
	t.Helper()
	log, _ := logger.GetTestLogger(t)

	b, err := prompt.NewBuilder(log, articleTemplate, prompt.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return b
}

func articleInput() *task.ArticleInput {
	return &task.ArticleInput{JSONData: &task.ArticleData{
		Title:        "Gentle Postpartum Workouts",
		TitleSlug:    "gentle-postpartum-workouts",
		Category:     "Fitness",
		CategorySlug: "fitness",
	}}
}

func TestNewBuilder_RejectsEmptyTemplate(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	_, err := prompt.NewBuilder(log, " \n")
	assert.ErrorIs(t, err, prompt.ErrEmptyArticleTemplate)

	_, err = prompt.NewBuilder(nil, "template")
	assert.Error(t, err)
}

func TestBuildArticle_SubstitutesPlaceholders(t *testing.T) {
	tmpl := "---\ntitle: [body.title]\nslug: [body.titleSlug]\ndate: [YYYY-MM-DD]\n" +
		"category: [body.category] ([body.categorySlug])\n---\n" +
		"Write about [Current Article Title]. Again: [body.title]."
	b := newBuilder(t, tmpl)

	got, err := b.BuildArticle(context.Background(), articleInput())
	require.NoError(t, err)

	wantHead := "---\ntitle: Gentle Postpartum Workouts\nslug: gentle-postpartum-workouts\ndate: 2024-11-06\n" +
		"category: Fitness (fitness)\n---\n" +
		"Write about Gentle Postpartum Workouts. Again: Gentle Postpartum Workouts."
	assert.True(t, strings.HasPrefix(got, wantHead), got)
	assert.NotContains(t, got, "[body.")
	assert.NotContains(t, got, "[YYYY-MM-DD]")

	rest := strings.TrimPrefix(got, wantHead)
	assert.True(t, strings.HasPrefix(rest, "\n\nImportant: Only return the article content in Markdown format."))
	assert.True(t, strings.HasSuffix(rest, "Category Information:\n"+
		"- The article MUST be categorized under: Fitness\n"+
		"- The category slug MUST be: fitness\n"+
		"- Do not modify or change these values in the generated content."))
}

func TestBuildArticle_ReplacementIsLiteral(t *testing.T) {
	b := newBuilder(t, "{{.Title}} [body.title]")

	in := articleInput()
	in.JSONData.Title = "[body.titleSlug] & {{x}}"

	got, err := b.BuildArticle(context.Background(), in)
	require.NoError(t, err)

	// The title is inserted first, so a slug token inside it is replaced next.
	assert.True(t, strings.HasPrefix(got, "{{.Title}} gentle-postpartum-workouts & {{x}}"), got)
}

func TestBuildArticle_MissingFields(t *testing.T) {
	b := newBuilder(t, "template")

	_, err := b.BuildArticle(context.Background(), &task.ArticleInput{})
	assert.ErrorIs(t, err, task.ErrMissingFields)
	assert.EqualError(t, err, "Missing required parameters: title, titleSlug, category, categorySlug")
}

func TestBuildTitleExpansion(t *testing.T) {
	b := newBuilder(t, "template")

	in := &task.TitleExpansionInput{
		JSONData:        json.RawMessage(`[{"id":"1","title":"Postpartum Weight Loss Basics","longTailTitleArr":["a"]}]`),
		SiteDescription: "A blog for new mothers",
	}

	got, err := b.BuildTitleExpansion(context.Background(), in)
	require.NoError(t, err)

	assert.Contains(t, got, "Website Description:\nA blog for new mothers\n")
	assert.Contains(t, got, "Input Data:\n[\n  {\n    \"id\": \"1\",")
	assert.Contains(t, got, "exactly 1 new long tail title")
	assert.Contains(t, got, "50-80 characters")
	assert.NotContains(t, got, "{{")
}

func TestBuildTitleExpansion_MissingFields(t *testing.T) {
	b := newBuilder(t, "template")

	_, err := b.BuildTitleExpansion(context.Background(), &task.TitleExpansionInput{
		JSONData: json.RawMessage(`[{"id":"1"}]`),
	})
	assert.EqualError(t, err, "Missing required parameters: jsonData and siteDescription")
}

func TestBuild_Dispatch(t *testing.T) {
	b := newBuilder(t, "Article: [body.title]")
	ctx := context.Background()

	got, err := b.Build(ctx, task.ArticleGeneration, articleInput())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Article: Gentle Postpartum Workouts"))

	_, err = b.Build(ctx, task.TitleExpansion, articleInput())
	assert.ErrorIs(t, err, prompt.ErrInputMismatch)

	_, err = b.Build(ctx, task.ID("unknown"), articleInput())
	assert.ErrorIs(t, err, task.ErrUnknownTask)
}
