/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/registry.go
*/
package command

// verbTable maps an uppercased verb to its handler. Each per-type file's
// init() registers its own verbs into this shared, package-level map.
var verbTable = make(map[string]Handler)

func register(verb string, h Handler) {
	verbTable[verb] = h
}
