// Package web holds the single-page client, embedded so the server binary
// is self-contained.
package web

import "embed"

//go:embed index.html app.js style.css
var Assets embed.FS
