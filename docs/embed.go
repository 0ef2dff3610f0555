package docs

import "embed"

// FS contains the long-form guides bundled with the when binary.
//
//go:embed guide
var FS embed.FS
