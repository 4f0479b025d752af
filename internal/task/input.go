package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so errors match what clients sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("present_json", presentJSON); err != nil {
		panic(fmt.Sprintf("task: register present_json validation: %v", err))
	}

	return v
}

// presentJSON rejects raw JSON values that are absent or falsy
// (null, false, 0, ""). Empty arrays and objects count as present.
func presentJSON(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}
	return isPresentJSON(raw)
}

func isPresentJSON(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}

// TitleItem is one entry of the title-expansion input array.
type TitleItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	LongTailTitleArr []string `json:"longTailTitleArr"`
}

// TitleExpansionInput is the request payload for TitleExpansion.
//
// JSONData is kept raw: clients send either the item array itself or a string
// that already contains the serialized array.
type TitleExpansionInput struct {
	JSONData        json.RawMessage `json:"jsonData" validate:"present_json"`
	SiteDescription string          `json:"siteDescription" validate:"required"`
}

var titleExpansionRequired = []string{"jsonData", "siteDescription"}

// Validate checks that both jsonData and siteDescription are present.
func (in *TitleExpansionInput) Validate() error {
	return missingFields(TitleExpansion, titleExpansionRequired, validate.Struct(in), "")
}

// DataText returns the input data as it should appear in the prompt: a string
// payload verbatim, anything else as indented JSON.
func (in *TitleExpansionInput) DataText() (string, error) {
	raw := bytes.TrimSpace(in.JSONData)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode jsonData string: %w", err)
		}
		return s, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("format jsonData: %w", err)
	}
	return buf.String(), nil
}

// Items decodes the input data into title items, unwrapping a string payload
// first.
func (in *TitleExpansionInput) Items() ([]TitleItem, error) {
	text, err := in.DataText()
	if err != nil {
		return nil, err
	}

	var items []TitleItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("decode title items: %w", err)
	}
	return items, nil
}

// ArticleData describes the article to write.
type ArticleData struct {
	Title        string `json:"title" validate:"required"`
	TitleSlug    string `json:"titleSlug" validate:"required"`
	Category     string `json:"category" validate:"required"`
	CategorySlug string `json:"categorySlug" validate:"required"`
}

// ArticleInput is the request payload for ArticleGeneration.
type ArticleInput struct {
	JSONData *ArticleData `json:"jsonData" validate:"required"`
}

var articleRequired = []string{"title", "titleSlug", "category", "categorySlug"}

// Validate checks that jsonData carries all four article fields.
func (in *ArticleInput) Validate() error {
	return missingFields(ArticleGeneration, articleRequired, validate.Struct(in), "jsonData")
}

// missingFields converts validator output into a *MissingFieldsError.
// When the container field itself (e.g. jsonData) is missing, every required
// field is reported missing.
func missingFields(id ID, required []string, err error, container string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s input: %w", id, err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if container != "" && fe.Field() == container {
			missing = append([]string(nil), required...)
			break
		}
		missing = append(missing, fe.Field())
	}

	return &MissingFieldsError{
		Task:     id,
		Required: required,
		Missing:  missing,
	}
}
