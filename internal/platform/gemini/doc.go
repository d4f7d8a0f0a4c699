// Package gemini implements the generation.Generator interface on Google's
// Gemini API. The generator asks the model for structured JSON describing a
// vocabulary entry and maps it onto generation.WordContent.
package gemini
