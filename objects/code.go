package objects

import "strings"

// CodeEvaluation is the result of running a learner's program: the source
// as submitted, what it printed, the harness's evaluation payload, and the
// error output if the run failed.
type CodeEvaluation struct {
	Code       string
	Output     string
	Evaluation string
	Error      string
}

// NormalizeCode strips trailing whitespace from every line and drops
// leading and trailing blank lines, so that incidental editor whitespace
// never affects code comparisons.
func NormalizeCode(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
