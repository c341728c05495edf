package allocator

import (
	"fmt"

	mmerrors "github.com/orizon-lang/mmanager/internal/errors"
)

// fatalf reports a contract violation the caller cannot recover from:
// a zero-size request, an unrecognized policy, operating on a
// torn-down allocator. It writes the error to the debug writer (if
// configured) and panics with a *mmerrors.StandardError; New's region
// acquisition failure is reported separately, as a returned error, since
// construction can still fail gracefully.
func (a *Allocator) fatalf(operation, format string, args ...interface{}) {
	err := mmerrors.ContractViolation(operation, fmt.Sprintf(format, args...))
	if a.debugW != nil {
		fmt.Fprintln(a.debugW, err.Error())
	}

	panic(err)
}

func (a *Allocator) logf(format string, args ...interface{}) {
	if a.debugW == nil {
		return
	}

	fmt.Fprintf(a.debugW, format+"\n", args...)
}
