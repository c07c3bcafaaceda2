package highlight

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStyle_ZeroIsIdentity(t *testing.T) {
	var s Style
	require.True(t, s.IsIdentity())
	require.Equal(t, DefaultAppearance, s.Resolve(DefaultAppearance))
	require.Equal(t, "inherit", s.String())
}

func TestStyle_ResolveOnlyEnabledChannels(t *testing.T) {
	s := Style{}.WithForeground(tcell.ColorRed)

	got := s.Resolve(Appearance{
		Foreground: tcell.ColorBlue,
		Background: tcell.ColorYellow,
		Font:       DefaultFont,
	})

	require.Equal(t, tcell.ColorRed, got.Foreground)
	require.Equal(t, tcell.ColorYellow, got.Background, "disabled channel must be inherited")
	require.Equal(t, DefaultFont, got.Font)
}

func TestStyle_WithReturnsCopy(t *testing.T) {
	base := Style{}.WithForeground(tcell.ColorRed)
	changed := base.WithBackground(tcell.ColorGreen)

	_, hasBg := base.Background()
	require.False(t, hasBg)
	bg, hasBg := changed.Background()
	require.True(t, hasBg)
	require.Equal(t, tcell.ColorGreen, bg)
}

func TestStyle_WithFontStyleDerivesFromFont(t *testing.T) {
	consolas := FontSpec{Family: "Consolas", Size: 12, Style: FontBold}

	font, ok := Style{}.WithFont(consolas).WithFontStyle(FontItalic).Font()
	require.True(t, ok)
	require.Equal(t, FontSpec{Family: "Consolas", Size: 12, Style: FontItalic}, font)

	font, ok = Style{}.WithFontStyle(FontUnderline).Font()
	require.True(t, ok)
	require.Equal(t, DefaultFont.WithStyle(FontUnderline), font)
}

func TestFontStyle_String(t *testing.T) {
	require.Equal(t, "regular", FontRegular.String())
	require.Equal(t, "bold|italic", (FontBold | FontItalic).String())
}

func TestParseFontStyle_Unknown(t *testing.T) {
	_, err := ParseFontStyle("bold|wavy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "wavy")
}

func TestParseFontStyle_AcceptsCommas(t *testing.T) {
	f, err := ParseFontStyle("Bold, strikethrough")
	require.NoError(t, err)
	require.Equal(t, FontBold|FontStrikeout, f)
}

func TestFontStyle_FlagsArePacked(t *testing.T) {
	require.Equal(t, FontStyle(0), FontRegular)
	require.Equal(t, FontStyle(1), FontBold)
	require.Equal(t, FontStyle(2), FontItalic)
	require.Equal(t, FontStyle(4), FontUnderline)
	require.Equal(t, FontStyle(8), FontStrikeout)
}

func TestProperty_FontStyleStringParses(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := FontStyle(rapid.IntRange(0, int(FontBold|FontItalic|FontUnderline|FontStrikeout)).Draw(rt, "flags"))

		parsed, err := ParseFontStyle(f.String())
		require.NoError(rt, err)
		require.Equal(rt, f, parsed)
	})
}

func TestProperty_ResolveIsLastWriterWins(t *testing.T) {
	colors := []Color{tcell.ColorRed, tcell.ColorBlue, tcell.ColorGreen, tcell.ColorDefault}

	rapid.Check(t, func(rt *rapid.T) {
		a := Style{}.WithForeground(rapid.SampledFrom(colors).Draw(rt, "a"))
		b := Style{}.WithForeground(rapid.SampledFrom(colors).Draw(rt, "b"))

		got := b.Resolve(a.Resolve(DefaultAppearance))
		want, _ := b.Foreground()
		require.Equal(rt, want, got.Foreground)
	})
}
