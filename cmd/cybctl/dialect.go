package main

import (
	"fmt"

	cyberiadaml "github.com/go-cyberiada/cyberiadaml"
)

func parseDialect(s string) (cyberiadaml.Dialect, error) {
	switch s {
	case "", "auto":
		return cyberiadaml.DialectAuto, nil
	case "native":
		return cyberiadaml.DialectNative, nil
	case "legacy", "yed":
		return cyberiadaml.DialectLegacy, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want auto, native, or legacy)", s)
	}
}
