// Small helpers for interactive prompts and wording
package utility

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	reader           = bufio.NewReader(os.Stdin)
	writer io.Writer = os.Stdout
)

// SetIO redirects the prompts, used by the commands' tests
func SetIO(in io.Reader, out io.Writer) {
	reader = bufio.NewReader(in)
	writer = out
}

// GetInput prompts and reads a single line. A closed input ends the program since
// every caller needs an answer to continue.
func GetInput(prompt string) string {
	fmt.Fprint(writer, prompt+": ")
	input, err := reader.ReadString('\n')

	if err != nil && (err != io.EOF || input == "") {
		os.Exit(1)
	}

	return strings.TrimRight(input, "\r\n")
}

func GetBoolean(prompt string) bool {
	answer := strings.ToLower(GetInput(fmt.Sprintf("%s [y/n] ", prompt)))
	return answer == "y" || answer == "yes"
}

// Pluralize appends an "s" unless n is exactly one
func Pluralize(word string, n int) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
