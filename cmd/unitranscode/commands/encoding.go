package commands

import (
	"fmt"
	"strings"

	"github.com/zyl910/zlutf"
)

// encodingNames maps the CLI's user-facing --from/--to spelling to the
// registry's Encoding constants.
var encodingNames = map[string]zlutf.Encoding{
	"narrow":   zlutf.Narrow,
	"utf8":     zlutf.UTF8,
	"utf-8":    zlutf.UTF8,
	"utf16be":  zlutf.UTF16BE,
	"utf-16be": zlutf.UTF16BE,
	"utf16le":  zlutf.UTF16LE,
	"utf-16le": zlutf.UTF16LE,
	"utf32be":  zlutf.UTF32BE,
	"utf-32be": zlutf.UTF32BE,
	"utf32le":  zlutf.UTF32LE,
	"utf-32le": zlutf.UTF32LE,
}

// parseEncoding resolves a --from/--to flag value to an Encoding.
func parseEncoding(name string) (zlutf.Encoding, error) {
	enc, ok := encodingNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return zlutf.Unknown, fmt.Errorf("unrecognized encoding %q (want one of: narrow, utf8, utf16be, utf16le, utf32be, utf32le)", name)
	}
	return enc, nil
}
