package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nioark/mentions/internal/engine/suggest"
	"github.com/nioark/mentions/internal/engine/text"
)

func newSegmentCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "segment [text]",
		Short: "Split text into normal and candidate spans",
		Long:  "Split text into normal and candidate spans. Without arguments the text is read from standard input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, sp := range e.tokenizer().Segment(s) {
				fmt.Fprintln(out, sp)
			}
			return nil
		},
	}
}

func newSuggestCmd(e *env) *cobra.Command {
	var caret int
	cmd := &cobra.Command{
		Use:   "suggest [text]",
		Short: "List directory entries for the candidate under the caret",
		Long:  "List directory entries for the candidate under the caret. The caret defaults to the end of the text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("caret") {
				caret = text.Len(s)
			}
			st := suggest.NewResolver(e.tokenizer()).Resolve(s, caret, e.dir, nil)
			printSuggestions(cmd.OutOrStdout(), st)
			return nil
		},
	}
	cmd.Flags().IntVar(&caret, "caret", 0, "caret offset in characters")
	return cmd
}

// inputText joins args, or reads standard input when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func printSuggestions(w io.Writer, st suggest.State) {
	if !st.HasCandidate {
		fmt.Fprintln(w, "no candidate")
		return
	}
	fmt.Fprintf(w, "candidate %s query %q\n", st.Candidate, st.Query)
	if len(st.Matches) == 0 {
		fmt.Fprintln(w, "  no matches")
		return
	}
	for i, m := range st.Matches {
		marker := " "
		if i == st.Selected {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %s\n", marker, m)
	}
}
