package rest

import "embed"

// TemplateFS holds the page templates compiled into the binary.
//
//go:embed templates
var TemplateFS embed.FS

// StaticFS holds the static asset tree. The exporter copies it into the
// generated site verbatim.
//
//go:embed static
var StaticFS embed.FS
