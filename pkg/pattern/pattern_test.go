package pattern

import (
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/kasuboski/reelinfo/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	set := Default()

	require.Len(t, set.Movie(), 1)
	assert.True(t, set.Movie()[0].MatchString("The.Matrix.1999.BluRay.x264-GROUP.mkv"))
	assert.True(t, set.Movie()[0].MatchString("the.matrix.1999.bluray-group.MKV"))
	assert.False(t, set.Movie()[0].MatchString("The Matrix.mkv"))

	assert.Equal(t, []string{"The", "Matrix", "Reloaded"}, set.Separator().Split("The.Matrix_Reloaded", -1))
	assert.Equal(t, "BluRay", capture(set.Source().String(), GroupSource, ".1080p.BluRay.x264"))
	assert.Equal(t, "x264", capture(set.VideoCodec().String(), GroupVideoCodec, ".1080p.BluRay.x264"))
	assert.Equal(t, "", capture(set.AudioCodec().String(), GroupAudioCodec, ".1080p.BluRay.x264"))
	assert.False(t, set.TitleCase())
}

func capture(expr, group, s string) string {
	re := regexp.MustCompile(expr)
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[re.SubexpIndex(group)]
}

func TestDefaultClassifiersRespectTokenBoundaries(t *testing.T) {
	source := Default().Source().String()

	assert.Equal(t, "", capture(source, GroupSource, ".DTS"), "TS inside DTS is not a source")
	assert.Equal(t, "TS", capture(source, GroupSource, ".TS.XviD"))
	assert.Equal(t, "DVDRip", capture(source, GroupSource, "_DVDRip_XviD"))
	assert.Equal(t, "DivX5", capture(Default().VideoCodec().String(), GroupVideoCodec, ".DivX5"))
}

func TestBuild(t *testing.T) {
	t.Run("empty config keeps defaults", func(t *testing.T) {
		set, diags := Build(config.Patterns{})

		def := Default()
		require.Len(t, set.Movie(), 1)
		assert.Equal(t, def.Movie()[0].String(), set.Movie()[0].String())
		assert.Equal(t, def.Separator().String(), set.Separator().String())
		assert.Equal(t, def.Source().String(), set.Source().String())
		assert.Equal(t, def.VideoCodec().String(), set.VideoCodec().String())
		assert.Equal(t, def.AudioCodec().String(), set.AudioCodec().String())
		assert.Equal(t, def.DiskNumber().String(), set.DiskNumber().String())

		assert.Len(t, diags, 6)
		for _, d := range diags {
			assert.ErrorIs(t, d, ErrNotConfigured)
		}
	})

	t.Run("valid config replaces every role", func(t *testing.T) {
		cfg := config.Patterns{
			Movie: []string{
				`(?P<name>[\w\.]+)\.(?P<year>\d{4})\.(?P<ext>\w+)`,
				`(?P<name>[\w\.]+)\.(?P<ext>\w+)`,
			},
			Separator:  `\.`,
			Source:     `(?P<source>WEB-DL|BluRay)`,
			VideoCodec: `(?P<video_codec>x265|HEVC)`,
			AudioCodec: `(?P<audio_codec>AAC)`,
			DiskNumber: `cd(?<number>\d+)`,
			TitleCase:  true,
		}

		set, diags := Build(cfg)
		assert.Empty(t, diags)
		assert.NoError(t, diags.Err())

		require.Len(t, set.Movie(), 2)
		assert.Equal(t, `(?i)^(?:(?P<name>[\w\.]+)\.(?P<year>\d{4})\.(?P<ext>\w+))$`, set.Movie()[0].String())
		assert.Equal(t, `(?i)^(?:(?P<name>[\w\.]+)\.(?P<ext>\w+))$`, set.Movie()[1].String())
		assert.Equal(t, `(?i)\.`, set.Separator().String())
		assert.Equal(t, "web-dl", set.Source().FindString(".720p.web-dl"))
		assert.Equal(t, "HEVC", set.VideoCodec().FindString(".HEVC."))
		assert.Equal(t, "AAC", set.AudioCodec().FindString(".AAC."))
		assert.Equal(t, []string{"CD2", "2"}, set.DiskNumber().FindStringSubmatch("CD2"))
		assert.True(t, set.TitleCase())
	})

	t.Run("invalid roles fall back individually", func(t *testing.T) {
		cfg := config.Patterns{
			Movie:      []string{`(?P<name>\w+)\.(?P<ext>\w+)`},
			Separator:  `[`,
			Source:     `(?P<source>WEB)`,
			VideoCodec: `(?<=x)264`,
			DiskNumber: `\d+`,
		}

		set, diags := Build(cfg)

		assert.Equal(t, `(?i)(?P<source>WEB)`, set.Source().String())
		assert.Equal(t, Default().Separator().String(), set.Separator().String())
		assert.Equal(t, Default().VideoCodec().String(), set.VideoCodec().String())
		assert.Equal(t, Default().DiskNumber().String(), set.DiskNumber().String())

		byRole := map[Role]Diagnostic{}
		for _, d := range diags {
			byRole[d.Role] = d
		}
		assert.Contains(t, byRole, RoleSeparator)
		assert.Contains(t, byRole, RoleVideoCodec)
		assert.ErrorIs(t, byRole[RoleDiskNumber], ErrMissingGroup)
		assert.ErrorIs(t, byRole[RoleAudioCodec], ErrNotConfigured)
		assert.NotContains(t, byRole, RoleMovie)
		assert.NotContains(t, byRole, RoleSource)
	})

	t.Run("movie patterns keep order and drop invalid entries", func(t *testing.T) {
		cfg := config.Patterns{
			Movie: []string{
				`(?P<name>a+)\.(?P<ext>\w+)`,
				`(`,
				`(?P<title>\w+)\.(?P<ext>\w+)`,
				`(?P<name>\w+)\.(?P<ext>\w+)`,
			},
		}

		set, diags := Build(cfg)
		require.Len(t, set.Movie(), 2)
		assert.Contains(t, set.Movie()[0].String(), "a+")
		assert.Contains(t, set.Movie()[1].String(), `(?P<name>\w+)`)

		var movieDiags int
		for _, d := range diags {
			if d.Role == RoleMovie {
				movieDiags++
			}
		}
		assert.Equal(t, 2, movieDiags)
	})

	t.Run("no valid movie pattern falls back to default", func(t *testing.T) {
		set, diags := Build(config.Patterns{Movie: []string{`(`, `   `}})

		require.Len(t, set.Movie(), 1)
		assert.Equal(t, Default().Movie()[0].String(), set.Movie()[0].String())
		assert.NotEmpty(t, diags)
	})
}

func TestDiagnostics(t *testing.T) {
	var diags Diagnostics
	assert.NoError(t, diags.Err())

	diags = append(diags,
		Diagnostic{Role: RoleSource, Err: ErrNotConfigured},
		Diagnostic{Role: RoleSeparator, Pattern: "[", Err: errors.New("bad")},
	)

	err := diags.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), `separator "[": bad`)
	assert.Contains(t, err.Error(), "source: pattern not configured")
}

func TestMovieReturnsCopy(t *testing.T) {
	set := Default()
	movie := set.Movie()
	movie[0] = nil

	assert.NotNil(t, set.Movie()[0])
}

func TestHolder(t *testing.T) {
	h := NewHolder(nil)
	require.NotNil(t, h.Load())

	custom, _ := Build(config.Patterns{Separator: `-`})
	prev := h.Swap(custom)
	assert.NotSame(t, custom, prev)
	assert.Same(t, custom, h.Load())

	h.Swap(nil)
	assert.NotNil(t, h.Load())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Swap(Default())
		}()
		go func() {
			defer wg.Done()
			set := h.Load()
			assert.NotNil(t, set.Separator())
		}()
	}
	wg.Wait()
}
