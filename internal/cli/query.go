package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bethropolis/tidesel/internal/markup"
	"github.com/bethropolis/tidesel/internal/session"
)

func newQueryCommand(st *rootState) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "query <file|url> <selector>",
		Short: "Evaluate a selector and print what it matches",
		Long: `Evaluate a CSS selector against a document without the interactive
screen. Prints the match count, the plain-English description and, for every
matched element, its line:column, its byte range in the text and its opening tag.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := st.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			parser, err := markup.NewParser(st.cfg.Markup.Parser)
			if err != nil {
				return err
			}

			var opts []session.Option
			if trace {
				opts = append(opts, session.WithSink(traceSink{w: cmd.ErrOrStderr()}))
			}
			sess := session.New(parser, opts...)
			sess.Load(cmd.Context(), doc.Text, doc.Origin)
			frame := sess.SetSelector(args[1])
			return writeReport(cmd.OutOrStdout(), sess, frame)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the selector's structural events to stderr")
	return cmd
}

// writeReport prints frame. A rejected selector is returned as an error
// after its status and description are printed.
func writeReport(w io.Writer, sess *session.Session, frame session.Frame) error {
	fmt.Fprintln(w, frame.Status)
	if frame.Description != "" {
		fmt.Fprintln(w, frame.Description)
	}
	if frame.State == session.Error {
		return frame.Err
	}

	lines := sess.Snapshot().Lines()
	for _, m := range frame.Matches {
		fmt.Fprintf(w, "%s\t%s\t%s\n", lines.Position(m.Range.Start), m.Range, m.Node.BeginTag())
	}
	if unresolved := len(frame.Labels) - len(frame.Matches); unresolved > 0 {
		fmt.Fprintf(w, "%d matched elements have no tag in the text\n", unresolved)
	}
	return nil
}
