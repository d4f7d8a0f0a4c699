// Package api contains the HTTP handlers, request/response models and error
// mapping for the REST surface. Handlers stay thin: decode and validate the
// request, call one service method, translate the result.
package api
