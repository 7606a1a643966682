package selector_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidesel/internal/markup"
	"github.com/bethropolis/tidesel/internal/selector"
)

// recorder logs events in a compact textual form.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) Begin()                { r.add("begin") }
func (r *recorder) Selector()             { r.add("selector") }
func (r *recorder) Type(name string)      { r.add("type %s", name) }
func (r *recorder) Universal()            { r.add("*") }
func (r *recorder) ID(id string)          { r.add("id %s", id) }
func (r *recorder) Class(class string)    { r.add("class %s", class) }
func (r *recorder) Pseudo(name, a string) { r.add("pseudo %s(%s)", name, a) }
func (r *recorder) End()                  { r.add("end") }
func (r *recorder) Attribute(name string, op selector.AttrOp, value string) {
	r.add("attr %s%s%s", name, op, value)
}
func (r *recorder) Combinator(kind selector.Combinator) { r.add("comb %q", kind.String()) }

func (r *recorder) String() string { return strings.Join(r.events, "; ") }

func TestParse_Events(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sel  string
		want string
	}{
		{sel: "p", want: "begin; selector; type p; end"},
		{sel: "  DIV  ", want: "begin; selector; type div; end"},
		{sel: "div.a#b", want: "begin; selector; type div; class a; id b; end"},
		{sel: "*", want: "begin; selector; *; end"},
		{sel: "ul > li", want: `begin; selector; type ul; comb ">"; type li; end`},
		{sel: "ul li", want: `begin; selector; type ul; comb " "; type li; end`},
		{sel: "h1", want: "begin; selector; type h1; end"},
		{sel: "a, b", want: "begin; selector; type a; selector; type b; end"},
		{sel: "a[href]", want: "begin; selector; type a; attr href; end"},
		{sel: `a[ href = "x y" ]`, want: "begin; selector; type a; attr href=x y; end"},
		{sel: "a[rel~=nofollow]", want: "begin; selector; type a; attr rel~=nofollow; end"},
		{sel: "[lang|=en]", want: "begin; selector; attr lang|=en; end"},
		{sel: "a[href^='http'][href$=\".org\"][title*=x]", want: "begin; selector; type a; attr href^=http; attr href$=.org; attr title*=x; end"},
		{sel: "li:first-child", want: "begin; selector; type li; pseudo first-child(); end"},
		{sel: "li:nth-child(2n+1)", want: "begin; selector; type li; pseudo nth-child(2n+1); end"},
		{sel: "p:not(.x)", want: "begin; selector; type p; pseudo not(.x); end"},
		{sel: `.a\:b`, want: "begin; selector; class a:b; end"},
	}

	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			t.Parallel()

			var rec recorder
			_, err := selector.Parse(tt.sel, &rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.String())
		})
	}
}

func TestParse_SiblingCombinators(t *testing.T) {
	t.Parallel()

	var rec recorder
	_, err := selector.Parse("b + i ~ em", &rec)
	require.NoError(t, err)
	assert.Equal(t, `begin; selector; type b; comb "+"; type i; comb "~"; type em; end`, rec.String())
}

func TestParse_SyntaxError(t *testing.T) {
	t.Parallel()

	for _, sel := range []string{"p[", "div >", "..x", ":nth-child("} {
		var rec recorder
		s, err := selector.Parse(sel, &rec)
		assert.Nil(t, s, sel)
		require.Error(t, err, sel)
		assert.True(t, errors.Is(err, selector.ErrSyntax), sel)

		var syn *selector.SyntaxError
		require.ErrorAs(t, err, &syn)
		assert.Equal(t, sel, syn.Selector)
		assert.NotEmpty(t, syn.Error())
		assert.Empty(t, rec.events, "no events on failure")
	}
}

func TestParse_NilSink(t *testing.T) {
	t.Parallel()

	s, err := selector.Parse("p", nil)
	require.NoError(t, err)
	assert.Equal(t, "p", s.String())
}

func TestTee(t *testing.T) {
	t.Parallel()

	var a, b recorder
	_, err := selector.Parse("p.x", selector.Tee(&a, nil, &b))
	require.NoError(t, err)
	assert.Equal(t, a.events, b.events)
	assert.Len(t, a.events, 5)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	text := "<div>\n<p class=x>1</p>\n<section><p>2</p></section>\n</div>"
	doc, err := markup.TokenizerParser{}.Parse(context.Background(), text)
	require.NoError(t, err)

	tests := []struct {
		sel   string
		lines []int
	}{
		{sel: "p", lines: []int{2, 3}},
		{sel: "p.x", lines: []int{2}},
		{sel: "div > p", lines: []int{2}},
		{sel: "section, p.x", lines: []int{2, 3}},
		{sel: "p, div", lines: []int{1, 2, 3}},
		{sel: "table", lines: nil},
	}

	for _, tt := range tests {
		s := selector.MustParse(tt.sel)
		var lines []int
		for _, el := range s.Evaluate(doc) {
			lines = append(lines, el.Line())
		}
		assert.Equal(t, tt.lines, lines, tt.sel)
	}
}

func TestEvaluate_SiblingsWithoutEndTags(t *testing.T) {
	t.Parallel()

	text := "<ul><li>1<li>2<li>3</ul><p>a<p>b"
	tests := []struct {
		sel  string
		want int
	}{
		{sel: "li + li", want: 2},
		{sel: "ul > li", want: 3},
		{sel: "li li", want: 0},
		{sel: "p + p", want: 1},
		{sel: "p:last-child", want: 1},
	}

	for _, name := range []string{markup.BackendTokenizer, markup.BackendTreeSitter} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := markup.NewParser(name)
			require.NoError(t, err)
			doc, err := p.Parse(context.Background(), text)
			require.NoError(t, err)

			for _, tt := range tests {
				assert.Len(t, selector.MustParse(tt.sel).Evaluate(doc), tt.want, tt.sel)
			}
		})
	}
}

func TestEvaluate_NilDocument(t *testing.T) {
	t.Parallel()

	assert.Empty(t, selector.MustParse("p").Evaluate(nil))
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { selector.MustParse("[") })
}
