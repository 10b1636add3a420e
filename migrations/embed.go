// Package migrations embeds the goose SQL migrations so the server and the
// migrate command carry their schema inside the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
