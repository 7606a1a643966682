package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/tidesel/internal/buffer"
)

func newScanCommand(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file|url>",
		Short: "List the tags the highlighter sees in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := st.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			snap := buffer.New(doc.Text, doc.Origin)
			w := cmd.OutOrStdout()
			for _, tag := range snap.Tags() {
				attrs := make([]string, len(tag.Attributes))
				for i, a := range tag.Attributes {
					attrs[i] = a.Slice(snap.Text())
				}
				fmt.Fprintf(w, "%s\t%s\t%s", snap.Lines().Position(tag.Full.Start), tag.Full, tag.Name.Slice(snap.Text()))
				if tag.Closing {
					fmt.Fprint(w, "\tclosing")
				}
				if len(attrs) > 0 {
					fmt.Fprintf(w, "\t%s", strings.Join(attrs, ","))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	return cmd
}
