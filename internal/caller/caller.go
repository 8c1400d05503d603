// Package caller resolves the name of the function enclosing a call site
// using the runtime call stack.
package caller

import (
	"runtime"
	"strings"
)

// Unknown is reported when no frame can be resolved for the requested depth.
const Unknown = "unknown"

// Resolve returns the bare name of a function on the call stack. skip selects
// the frame: 0 is the caller of Resolve, 1 its caller, and so on. Inlined
// frames are accounted for, so wrapping Resolve in small helpers is safe.
func Resolve(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Unknown
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.Function == "" {
		return Unknown
	}
	return BaseName(frame.Function)
}

// BaseName reduces a fully qualified runtime function name (for example
// "github.com/acme/app/server.(*Server).Start.func1") to the bare name of the
// nearest named enclosing function ("Start"). The import path, package name
// and receiver are stripped, and anonymous-function suffixes such as ".func1"
// or ".func2.1" are unwound so closures report the function they are defined
// in.
func BaseName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	for {
		i := strings.LastIndex(full, ".")
		if i < 0 {
			return full
		}
		seg := full[i+1:]
		if !anonSegment(seg) {
			// Method values carry a "-fm" wrapper suffix.
			return strings.TrimSuffix(seg, "-fm")
		}
		full = full[:i]
	}
}

// anonSegment reports whether seg is a compiler-generated anonymous function
// suffix: "funcN" for a closure, or a bare ordinal "N" for a closure nested
// inside another one.
func anonSegment(seg string) bool {
	seg = strings.TrimPrefix(seg, "func")
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
