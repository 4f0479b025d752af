// Package api handles incoming HTTP requests for the generation routes:
// request decoding, input validation, and shaping generation outcomes into
// HTTP responses. It is the adapter between HTTP clients and the prompt and
// generation packages.
package api
