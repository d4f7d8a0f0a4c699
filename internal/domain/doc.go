// Package domain defines the core business entities of the vocabulary
// trainer: users, language pairs, words, review cards and review events,
// together with their validation rules. The spaced-repetition scheduler
// lives in the srs subpackage, text normalization in textnorm, and the
// answer validation engine in answer.
package domain
