// Package prompt renders the prompts sent to Gemini for each SEO task.
//
// Title expansion uses a fixed template embedded in the binary. Article
// generation starts from an externally configured template and replaces the
// bracketed placeholder tokens literally, so prompt wording can change without
// a rebuild.
package prompt
