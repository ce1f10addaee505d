package errutil

import (
	"fmt"
)

// Debug enables the Bug/BugOn checks. The codec tests switch it on.
var Debug = false

func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("FATAL: %v", err))
}

// Must unwraps a (value, error) pair, panicking through FatalIf on error.
func Must[T any](v T, err error) T {
	FatalIf(err)
	return v
}

func Bug(format string, msg ...any) {
	if Debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if Debug && cond {
		Bug(format, msg...)
	}
}
