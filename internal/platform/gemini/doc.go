// Package gemini implements the generation interfaces using Google's
// Gemini API. The Client is the opaque completion service (prompt in,
// text out, with retry on transient failures); the Generator layers
// prompt templating and response parsing on top of any completion
// service, which keeps it testable without network access.
package gemini
