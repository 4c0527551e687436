package util

import (
	"fmt"
)

// Assertf panics if cond is false. Used for internal invariants which
// indicate a programming error rather than bad user input.
func Assertf(cond bool, fmtstr string, o ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(fmtstr, o...))
	}
}
