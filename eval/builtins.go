/*
File    : lumen/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/scope"
)

// registerBuiltins seeds the initial global environment. The single entry
// is bound under the literal key "console.log", which cannot actually be
// written in source because property access is not parsed: this is
// flagged here, not silently worked around by renaming the binding to a
// bare identifier.
func registerBuiltins(global *scope.Scope) {
	global.Bind("console.log", &objects.Builtin{
		Name: "console.log",
		Fn:   consoleLog,
	})
}

// consoleLog prints its arguments separated by single spaces, followed by
// a newline, using each argument's Display form, and returns undefined.
func consoleLog(args []objects.Value) (objects.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	fmt.Println(strings.Join(parts, " "))
	return &objects.Undefined{}, nil
}
