package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/kasuboski/reelinfo/config"
)

// Named groups understood by the extraction pipeline
const (
	GroupName       = "name"
	GroupYear       = "year"
	GroupInfo       = "info"
	GroupGroup      = "group"
	GroupDisk       = "disk"
	GroupExt        = "ext"
	GroupSource     = "source"
	GroupVideoCodec = "video_codec"
	GroupAudioCodec = "audio_codec"
	GroupNumber     = "number"
)

const (
	defaultMoviePattern      = `^(?P<name>[\w\.\-\']+)\.\(?(?P<year>\d{4})\)?(?P<info>(\.\w+)+)\-\[?(?P<group>\w+)\]?\.((?P<disk>\w+)\.)?(?P<ext>[\w\-]+)$`
	defaultSeparatorPattern  = `[\._]`
	defaultSourcePattern     = `(?:^|[^a-z0-9])(?P<source>BDRip|BluRay|HD-DVD|DVDRip|TVRip|HDTVRip|CAM|TS|DVDScr|Scr|R5)(?:[^a-z0-9]|$)`
	defaultVideoCodecPattern = `(?:^|[^a-z0-9])(?P<video_codec>XviD|DivX|DivX5|H264|X264)(?:[^a-z0-9]|$)`
	defaultAudioCodecPattern = `(?:^|[^a-z0-9])(?P<audio_codec>AC3|DTS)(?:[^a-z0-9]|$)`
	defaultDiskNumberPattern = `\w*(?P<number>\d+)`
)

// Role identifies one of the configurable pattern slots
type Role string

const (
	RoleMovie      Role = "movie"
	RoleSeparator  Role = "separator"
	RoleSource     Role = "source"
	RoleVideoCodec Role = "videoCodec"
	RoleAudioCodec Role = "audioCodec"
	RoleDiskNumber Role = "diskNumber"
)

var (
	ErrNotConfigured = errors.New("pattern not configured")
	ErrMissingGroup  = errors.New("pattern is missing a required named group")
)

// Set is an immutable collection of compiled patterns. A new Set is built for every
// configuration load and swapped as a whole.
type Set struct {
	movie      []*regexp.Regexp
	separator  *regexp.Regexp
	source     *regexp.Regexp
	videoCodec *regexp.Regexp
	audioCodec *regexp.Regexp
	diskNumber *regexp.Regexp
	titleCase  bool
}

// Movie returns the primary filename patterns in match order
func (s *Set) Movie() []*regexp.Regexp {
	return slices.Clone(s.movie)
}

func (s *Set) Separator() *regexp.Regexp  { return s.separator }
func (s *Set) Source() *regexp.Regexp     { return s.source }
func (s *Set) VideoCodec() *regexp.Regexp { return s.videoCodec }
func (s *Set) AudioCodec() *regexp.Regexp { return s.audioCodec }
func (s *Set) DiskNumber() *regexp.Regexp { return s.diskNumber }

// TitleCase reports whether normalized titles should be title cased
func (s *Set) TitleCase() bool { return s.titleCase }

// Diagnostic records a pattern role that kept its default
type Diagnostic struct {
	Role    Role
	Pattern string
	Err     error
}

func (d Diagnostic) Error() string {
	if d.Pattern == "" {
		return fmt.Sprintf("%s: %v", d.Role, d.Err)
	}
	return fmt.Sprintf("%s %q: %v", d.Role, d.Pattern, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

type Diagnostics []Diagnostic

// Err joins the diagnostics into a single error, nil when there are none
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}

	errs := make([]error, len(d))
	for i, diag := range d {
		errs[i] = diag
	}
	return errors.Join(errs...)
}

// Default returns the built-in pattern set
func Default() *Set {
	return &Set{
		movie:      []*regexp.Regexp{mustAnchored(defaultMoviePattern)},
		separator:  mustCompile(defaultSeparatorPattern),
		source:     mustCompile(defaultSourcePattern),
		videoCodec: mustCompile(defaultVideoCodecPattern),
		audioCodec: mustCompile(defaultAudioCodecPattern),
		diskNumber: mustCompile(defaultDiskNumberPattern),
	}
}

// Build compiles the configured patterns. Each role that is missing, fails to compile,
// or lacks a required named group keeps its default and is reported in the returned
// diagnostics. The returned set is always usable.
func Build(cfg config.Patterns) (*Set, Diagnostics) {
	set := Default()
	set.titleCase = cfg.TitleCase

	var diags Diagnostics

	movie, movieDiags := buildMovie(cfg.Movie)
	diags = append(diags, movieDiags...)
	if len(movie) > 0 {
		set.movie = movie
	}

	single := []struct {
		role     Role
		text     string
		required []string
		target   **regexp.Regexp
	}{
		{RoleSeparator, cfg.Separator, nil, &set.separator},
		{RoleSource, cfg.Source, nil, &set.source},
		{RoleVideoCodec, cfg.VideoCodec, nil, &set.videoCodec},
		{RoleAudioCodec, cfg.AudioCodec, nil, &set.audioCodec},
		{RoleDiskNumber, cfg.DiskNumber, []string{GroupNumber}, &set.diskNumber},
	}

	for _, p := range single {
		if strings.TrimSpace(p.text) == "" {
			diags = append(diags, Diagnostic{Role: p.role, Err: ErrNotConfigured})
			continue
		}

		re, err := compile(p.text, false, p.required...)
		if err != nil {
			diags = append(diags, Diagnostic{Role: p.role, Pattern: p.text, Err: err})
			continue
		}

		*p.target = re
	}

	return set, diags
}

func buildMovie(texts []string) ([]*regexp.Regexp, Diagnostics) {
	if len(texts) == 0 {
		return nil, Diagnostics{{Role: RoleMovie, Err: ErrNotConfigured}}
	}

	var (
		compiled []*regexp.Regexp
		diags    Diagnostics
	)
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			diags = append(diags, Diagnostic{Role: RoleMovie, Err: ErrNotConfigured})
			continue
		}

		re, err := compile(text, true, GroupName, GroupExt)
		if err != nil {
			diags = append(diags, Diagnostic{Role: RoleMovie, Pattern: text, Err: err})
			continue
		}
		compiled = append(compiled, re)
	}

	return compiled, diags
}

// compile builds a case-insensitive expression. Anchored expressions only match the
// entire input.
func compile(text string, anchored bool, required ...string) (*regexp.Regexp, error) {
	expr := "(?i)" + text
	if anchored {
		expr = `(?i)^(?:` + text + `)$`
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	names := re.SubexpNames()
	for _, group := range required {
		if !slices.Contains(names, group) {
			return nil, fmt.Errorf("%w: %s", ErrMissingGroup, group)
		}
	}

	return re, nil
}

func mustCompile(text string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + text)
}

func mustAnchored(text string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + text + `)$`)
}

// Holder shares the active Set between the worker and reconfiguration
type Holder struct {
	current atomic.Pointer[Set]
}

// NewHolder returns a holder containing set, or the defaults when set is nil
func NewHolder(set *Set) *Holder {
	if set == nil {
		set = Default()
	}

	h := &Holder{}
	h.current.Store(set)
	return h
}

func (h *Holder) Load() *Set {
	return h.current.Load()
}

// Swap replaces the active set and returns the previous one
func (h *Holder) Swap(set *Set) *Set {
	if set == nil {
		set = Default()
	}
	return h.current.Swap(set)
}
