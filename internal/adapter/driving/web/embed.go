package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet).
//
//go:embed static/*
var StaticFS embed.FS

// templatesFS holds the page templates.
//
//go:embed templates/*.html
var templatesFS embed.FS
