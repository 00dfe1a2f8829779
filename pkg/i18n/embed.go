package i18n

import (
	"embed"
	"io/fs"
)

//go:embed translations/*.yaml
var embedded embed.FS

// Embedded returns the built-in catalog.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "translations")
	if err != nil {
		panic(err)
	}
	return sub
}
