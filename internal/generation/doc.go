// Package generation defines the boundary between the gateway and the
// AI/LLM content generation backend (Gemini). The Generator interface is
// implemented by internal/platform/gemini; this package adds the provider
// independent control flow around it: retrying rate-limited calls with linear
// backoff, racing the whole retry sequence against a request deadline, and
// classifying the result into an Outcome for the HTTP layer.
package generation
