package markup_test

import (
	"testing"

	"github.com/arthur-debert/prism/pkg/aliases"
	"github.com/arthur-debert/prism/pkg/errors"
	"github.com/arthur-debert/prism/pkg/markup"
	"github.com/arthur-debert/prism/pkg/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("no markup yields one plain segment", func(t *testing.T) {
		segs, err := markup.Parse("User 42 logged in", nil)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, markup.Segment{Text: "User 42 logged in"}, segs[0])
	})

	t.Run("empty input yields no segments", func(t *testing.T) {
		segs, err := markup.Parse("", nil)
		require.NoError(t, err)
		assert.Empty(t, segs)
	})

	t.Run("styled span between plain runs", func(t *testing.T) {
		segs, err := markup.Parse("Mix <gray,italic>and</> match", nil)
		require.NoError(t, err)
		require.Len(t, segs, 3)
		assert.Equal(t, markup.Segment{Text: "Mix "}, segs[0])
		assert.Equal(t, markup.Segment{
			Text:   "and",
			Style:  styles.Style{Color: styles.ColorGray, Italic: true},
			Styled: true,
		}, segs[1])
		assert.Equal(t, markup.Segment{Text: " match"}, segs[2])
	})

	t.Run("leading span has no empty plain segment", func(t *testing.T) {
		segs, err := markup.Parse("<yellow,italic>Low disk</>: 87.3%", nil)
		require.NoError(t, err)
		require.Len(t, segs, 2)
		assert.Equal(t, markup.Segment{
			Text:   "Low disk",
			Style:  styles.Style{Color: styles.ColorYellow, Italic: true},
			Styled: true,
		}, segs[0])
		assert.Equal(t, markup.Segment{Text: ": 87.3%"}, segs[1])
	})

	t.Run("adjacent spans", func(t *testing.T) {
		segs, err := markup.Parse("<red>a</><blue>b</>", nil)
		require.NoError(t, err)
		require.Len(t, segs, 2)
		assert.True(t, segs[0].Styled)
		assert.True(t, segs[1].Styled)
		assert.Equal(t, "a", segs[0].Text)
		assert.Equal(t, "b", segs[1].Text)
	})

	t.Run("whitespace inside tag body is trimmed", func(t *testing.T) {
		segs, err := markup.Parse("<red , bold>x</>", nil)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, styles.Style{Color: styles.ColorRed, Bold: true}, segs[0].Style)
	})
}

func TestParseAliases(t *testing.T) {
	r := aliases.NewRegistry()
	require.NoError(t, r.Register("#", "purple,i"))

	t.Run("whole tag body resolves as alias", func(t *testing.T) {
		segs, err := markup.Parse("<#>Component</>", r)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, markup.Segment{
			Text:   "Component",
			Style:  styles.Style{Color: styles.ColorMagenta, Italic: true},
			Styled: true,
		}, segs[0])
	})

	t.Run("alias wins over comma-list parse", func(t *testing.T) {
		// "red" registered as an alias shadows the color name when it is
		// the entire tag body
		require.NoError(t, r.Register("red", "blue,bold"))
		segs, err := markup.Parse("<red>x</>", r)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, styles.Style{Color: styles.ColorBlue, Bold: true}, segs[0].Style)
	})

	t.Run("unregistered alias is an unknown token", func(t *testing.T) {
		segs, err := markup.Parse("a <@>b</> c", r)
		require.Error(t, err)
		assert.Equal(t, errors.ErrUnknownToken, errors.GetErrorCode(err))
		require.Len(t, segs, 1)
		assert.Equal(t, "a b c", segs[0].Text)
	})
}

func TestParseMalformed(t *testing.T) {
	t.Run("two colors degrade to plain text", func(t *testing.T) {
		segs, err := markup.Parse("before <red,blue>text</> after", nil)
		require.Error(t, err)
		assert.Equal(t, errors.ErrMultipleColors, errors.GetErrorCode(err))
		require.Len(t, segs, 1)
		assert.Equal(t, "before text after", segs[0].Text)
	})

	t.Run("unknown token keeps span text", func(t *testing.T) {
		segs, err := markup.Parse("<sparkly>hello</> world", nil)
		require.Error(t, err)
		assert.Equal(t, errors.ErrUnknownToken, errors.GetErrorCode(err))
		require.Len(t, segs, 1)
		assert.Equal(t, "hello world", segs[0].Text)
	})

	t.Run("malformed span does not corrupt its neighbors", func(t *testing.T) {
		segs, err := markup.Parse("<green>ok</> <red,blue>bad</> <bold>em</>", nil)
		require.Error(t, err)
		require.Len(t, segs, 3)
		assert.Equal(t, "ok", segs[0].Text)
		assert.Equal(t, " bad ", segs[1].Text)
		assert.False(t, segs[1].Styled)
		assert.Equal(t, "em", segs[2].Text)
	})

	t.Run("unterminated span passes through literally", func(t *testing.T) {
		segs, err := markup.Parse("<red>oops", nil)
		require.Error(t, err)
		assert.Equal(t, errors.ErrUnterminated, errors.GetErrorCode(err))
		require.Len(t, segs, 1)
		assert.Equal(t, "<red>oops", segs[0].Text)
	})

	t.Run("close marker belongs to the nearest unclosed tag", func(t *testing.T) {
		segs, err := markup.Parse("<red>a <blue>b</> c", nil)
		require.Error(t, err)
		assert.Equal(t, errors.ErrUnterminated, errors.GetErrorCode(err))
		require.Len(t, segs, 3)
		assert.Equal(t, markup.Segment{Text: "<red>a "}, segs[0])
		assert.Equal(t, markup.Segment{
			Text:   "b",
			Style:  styles.Style{Color: styles.ColorBlue},
			Styled: true,
		}, segs[1])
		assert.Equal(t, markup.Segment{Text: " c"}, segs[2])
	})
}

func TestParseStrayBrackets(t *testing.T) {
	t.Run("lone close marker passes through without error", func(t *testing.T) {
		segs, err := markup.Parse("a </> b", nil)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, "a </> b", segs[0].Text)
	})

	t.Run("bare greater-than is literal", func(t *testing.T) {
		segs, err := markup.Parse("3 > 2", nil)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, "3 > 2", segs[0].Text)
	})

	t.Run("less-than with no closing bracket is literal", func(t *testing.T) {
		segs, err := markup.Parse("a < b", nil)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, "a < b", segs[0].Text)
	})

	t.Run("literal text is reconstructed losslessly", func(t *testing.T) {
		input := "x <gray>1 < 2</> y"
		segs, err := markup.Parse(input, nil)
		require.NoError(t, err)
		var got string
		for _, seg := range segs {
			got += seg.Text
		}
		assert.Equal(t, "x 1 < 2 y", got)
	})
}

func TestExpand(t *testing.T) {
	t.Run("styled span resets then restores the default", func(t *testing.T) {
		out, err := markup.Expand("x <red>y</> z", "\x1b[37m", nil)
		require.NoError(t, err)
		assert.Equal(t, "x \x1b[31my\x1b[0m\x1b[37m z", out)
	})

	t.Run("no default sequence to restore", func(t *testing.T) {
		out, err := markup.Expand("<bold>hi</>", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[1mhi\x1b[0m", out)
	})

	t.Run("degraded markup still renders the text", func(t *testing.T) {
		out, err := markup.Expand("a <red,blue>b</> c", "", nil)
		require.Error(t, err)
		assert.Equal(t, "a b c", out)
	})
}

func TestStripTags(t *testing.T) {
	r := aliases.NewRegistry()
	require.NoError(t, r.Register("#", "purple,i"))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"single span", "a <red>b</> c", "a b c"},
		{"alias span", "<#>Component</>", "Component"},
		{"unterminated", "<red>oops", "<red>oops"},
		{"stray brackets", "1 < 2 > 0", "1 < 2 > 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.StripTags(tt.input, r))
		})
	}
}
