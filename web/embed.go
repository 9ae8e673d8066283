// Package web holds the single-page task list UI served at "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var public embed.FS

func PublicFS() fs.FS {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
