package workout

import "embed"

// Content holds the default packages
//
//go:embed etc/packages.json
var Content embed.FS
