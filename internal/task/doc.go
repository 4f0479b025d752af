// Package task defines the SEO generation workflows the gateway supports.
// Each workflow is identified by an ID that doubles as its HTTP route, and
// maps to exactly one immutable Config holding the Gemini model name,
// sampling parameters and safety thresholds used for that workflow.
//
// The package also owns the validated request payloads for each workflow
// (TitleExpansionInput, ArticleInput). Validation failures are reported as a
// *MissingFieldsError so the API layer can answer with a 400 before any
// prompt is built.
package task
