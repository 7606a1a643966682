package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidesel/internal/cli"
	"github.com/bethropolis/tidesel/internal/selector"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := cli.NewRootCommand()
	for _, name := range []string{"query", "scan"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("force"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("parser"))
}

func TestQuery(t *testing.T) {
	path := writeDoc(t, "<div><p>x</p></div>")

	for _, parser := range []string{"tokenizer", "tree-sitter"} {
		t.Run(parser, func(t *testing.T) {
			out, err := execute(t, "--parser", parser, "query", path, "p")
			require.NoError(t, err)
			assert.Equal(t, "Matches: 1\nTake all <p> elements and select them.\n1:6\t[5+3]\t<p>\n", out)
		})
	}
}

func TestQuery_Trace(t *testing.T) {
	out, err := execute(t, "query", "--trace", writeDoc(t, "<ul><li>a</ul>"), "ul > li")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "begin\nselector\ntype ul\ncombinator \">\"\ntype li\nend\nMatches: 1\n"), out)
}

func TestQuery_NoMatches(t *testing.T) {
	out, err := execute(t, "query", writeDoc(t, "<div></div>"), "span")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Matches: 0\n"))
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestQuery_SyntaxError(t *testing.T) {
	out, err := execute(t, "query", writeDoc(t, "<p>x</p>"), "p[")
	require.ErrorIs(t, err, selector.ErrSyntax)
	assert.True(t, strings.HasPrefix(out, "Error: "))
	assert.Contains(t, out, "\nOops! ")
}

func TestQuery_MissingFile(t *testing.T) {
	_, err := execute(t, "query", filepath.Join(t.TempDir(), "missing.html"), "p")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScan(t *testing.T) {
	out, err := execute(t, "scan", writeDoc(t, `<a href="x">y</a>`))
	require.NoError(t, err)
	assert.Equal(t, "1:1\t[0+12]\ta\thref\n1:14\t[13+4]\ta\tclosing\n", out)
}
