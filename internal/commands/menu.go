package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const invalidSelection = "Invalid selection, please choose between 1 and 4."

// runMenu prompts for one of the report bundles and renders it. An invalid
// selection prints a message and exits cleanly without loading the ledger.
func runMenu(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Select view:")
	fmt.Fprintln(out, "1. Daily and running statistics")
	fmt.Fprintln(out, "2. Historical statistics")
	fmt.Fprintln(out, "3. Account summary")
	fmt.Fprintln(out, "4. Show all")
	fmt.Fprint(out, "Choice (1-4): ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out, invalidSelection)
		return nil
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > 4 {
		fmt.Fprintln(out, invalidSelection)
		return nil
	}

	s, r, err := opts.load(cmd)
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		r.Daily(s)
	case 2:
		r.Historical(s)
	case 3:
		r.Summary(s)
	case 4:
		r.All(s)
	}
	return nil
}
