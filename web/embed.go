package web

import "embed"

// StaticFS embeds the static single-page UI.
//
//go:embed static/*
var StaticFS embed.FS
