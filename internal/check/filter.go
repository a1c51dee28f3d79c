package check

import "strings"

// verboseDiffDelimiter is the scissors line `git commit --verbose` inserts
// before the generated diff. Everything from this line on is discarded.
const verboseDiffDelimiter = "# ------------------------ >8 ------------------------"

// FilterComments strips editor comment noise from a raw commit message:
// lines starting with '#' are dropped, and the message is truncated at the
// verbose-diff scissors line. Applied only to inline and file-provided
// text; messages read from git history are already clean.
//
// Filtering is idempotent: a message without comment lines or a scissors
// line passes through unchanged.
func FilterComments(message string) string {
	var kept []string
	for _, line := range strings.Split(message, "\n") {
		if strings.Contains(line, verboseDiffDelimiter) {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
