package controller

import (
	m "github.com/mouse-blink/archdoc/internal/model"
)

// fileResultMsg is sent into the Bubble Tea program for every processed
// file.
type fileResultMsg m.FileResult

// summaryMsg carries the final counts and tells the program to finish.
type summaryMsg m.Summary
