package output

import (
	"fmt"
	"io"
	"strconv"
)

// ansiString is text we styled ourselves. report lets it through unescaped;
// every other string argument may carry a process name and is sanitized.
type ansiString string

func report(w io.Writer, format string, args ...any) {
	clean := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case ansiString:
			clean[i] = string(v)
		case string:
			clean[i] = SanitizeTerminal(v)
		case error:
			clean[i] = SanitizeTerminal(v.Error())
		default:
			clean[i] = a
		}
	}
	fmt.Fprintf(w, format, clean...)
}

// PrintFlags echoes the parsed switches, one per line
func PrintFlags(w io.Writer, showPIDs, numericSort, version bool) {
	report(w, "show_pids: %s\nnumeric_sort: %s\nversion: %s\n",
		strconv.FormatBool(showPIDs), strconv.FormatBool(numericSort), strconv.FormatBool(version))
}

// PrintVersion writes the version banner. kernel may be empty.
func PrintVersion(w io.Writer, version, kernel string, colorEnabled bool) {
	report(w, "%s %s.", styled(titleStyle, "pstree", colorEnabled), version)
	if kernel != "" {
		report(w, " %s", styled(dimStyle, "("+kernel+")", colorEnabled))
	}
	report(w, "\n")
}

// PrintError writes a failed run the way the rest of the CLI reports errors
func PrintError(w io.Writer, err error, colorEnabled bool) {
	report(w, "\n%s\n  %s\n", styled(errorStyle, "Error:", colorEnabled), err)
	report(w, "\nNo tree was printed. For usage and options, run: pstree --help\n")
}
