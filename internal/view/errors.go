package view

import "errors"

// Sentinel kinds for rendering errors.
var (
	ErrRender   = errors.New("render failed")
	ErrTemplate = errors.New("template parse failed")
)
