package toc

import "errors"

// Sentinel errors for document operations.
var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrMissingMarkers    = errors.New("missing TOC markers")
	ErrMarkersOutOfOrder = errors.New("TOC markers are out of order")
	ErrCheckFailed       = errors.New("document check failed")
)
