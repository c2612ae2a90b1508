// Package summary implements the outbound clients that turn a built request into a generated summary. Two backends are available: any OpenAI-compatible API and a remote Ollama server.
package summary

// userPreamble is the lead-in the instruction templates expect before the
// document body.
const userPreamble = "Please summarize the following content:\n\n"

// summaryTemperature keeps the output factual rather than creative.
const summaryTemperature = 0.3
