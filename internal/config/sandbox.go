package config

import (
	lua "github.com/yuin/gopher-lua"
)

// newSandboxedVM creates a Lua VM restricted to declarative use. The
// os/io libraries, all code-loading entry points, and the debug library
// are removed; string, table, math, and the basic utilities remain, which
// is all a config assembling strings and tables needs.
func newSandboxedVM() *lua.LState {
	L := lua.NewState()

	for _, global := range []string{
		"os", "io",
		"require", "dofile", "loadfile", "load", "loadstring",
		"debug",
	} {
		L.SetGlobal(global, lua.LNil)
	}

	return L
}
