package report

import (
	"fmt"
	"os"
)

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The reprPath is the representative path to the erroneous source file as it
// should be shown to the user.  The src is the full source text the error
// occurred in; it is used to display the erroneous source excerpt and may be
// empty, in which case no excerpt is printed.
func ReportCompileError(reprPath, src string, cerr *CompileError) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayCompileError(reprPath, src, cerr)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayStdError(reprPath, err)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are
// expected errors that generally result from invalid configuration of some
// form: unreadable input files, bad manifests, etc.
func ReportFatal(msg string, args ...interface{}) {
	displayFatal(fmt.Sprintf(msg, args...))

	os.Exit(1)
}

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	return rep != nil && rep.isErr
}
