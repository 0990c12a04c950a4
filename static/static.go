package static

import "embed"

//go:embed *.html
var Views embed.FS
