package web

import "embed"

// FS holds the stylesheet and script shipped inside the binary. It is served
// under /static when no STATIC_DIR exists on disk.
//
//go:embed static/*
var FS embed.FS
