// SPDX-License-Identifier: MIT

// Package log provides structured logging utilities.
package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"
	FieldPath      = "path"
	FieldSetting   = "setting"
	FieldLine      = "line"
)
