// Package gemini provides an implementation of the generation.Generator interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it translates a task.Config into
// Gemini request settings (sampling parameters and safety thresholds), sends
// the prompt, and turns the response back into plain text. Provider errors
// that signal quota exhaustion are marked with generation.ErrRateLimited so
// the retry layer can recognise them; every other error is passed through
// with its message intact.
//
// The package depends on the google.golang.org/genai client library.
package gemini
