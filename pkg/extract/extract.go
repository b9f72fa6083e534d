package extract

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/kasuboski/reelinfo/pkg/pattern"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fields maps named capture groups to the text they captured. Groups that did not
// take part in the match are absent.
type Fields map[string]string

// Decompose tries each pattern in order against the whole filename and returns the
// named groups of the first pattern that matches. A match only counts when the name
// and ext groups captured text.
func Decompose(filename string, patterns []*regexp.Regexp) (Fields, bool) {
	return decompose(filename, patterns, hasRequired)
}

func decompose(filename string, patterns []*regexp.Regexp, accept func(Fields) bool) (Fields, bool) {
	for _, re := range patterns {
		loc := re.FindStringSubmatchIndex(filename)
		if loc == nil || loc[0] != 0 || loc[1] != len(filename) {
			continue
		}

		fields := make(Fields)
		for i, name := range re.SubexpNames() {
			if name == "" || loc[2*i] < 0 {
				continue
			}
			fields[name] = filename[loc[2*i]:loc[2*i+1]]
		}

		if !accept(fields) {
			continue
		}

		return fields, true
	}

	return nil, false
}

// Extract decomposes the base name of path with the movie patterns of set and
// normalizes the captured fields.
func Extract(path string, set *pattern.Set) Result {
	filename := filepath.Base(path)

	fields, ok := decompose(filename, set.Movie(), func(f Fields) bool {
		// a name made only of separators leaves no title
		return hasRequired(f) && normalizeTitle(f[pattern.GroupName], set.Separator(), false) != ""
	})
	if !ok {
		return Unparsed{Path: path}
	}

	parsed := Normalize(fields, set)
	parsed.Path = path
	parsed.Filename = filename
	return parsed
}

// Normalize derives the result fields from the captures of a movie pattern. A field
// whose sub-pattern does not match is left unset.
func Normalize(fields Fields, set *pattern.Set) Parsed {
	raw := fields[pattern.GroupName]
	parsed := Parsed{
		RawTitle:  raw,
		Title:     normalizeTitle(raw, set.Separator(), set.TitleCase()),
		Year:      parseYear(fields[pattern.GroupYear]),
		Extension: strings.ToLower(fields[pattern.GroupExt]),
	}

	if group, ok := fields[pattern.GroupGroup]; ok && group != "" {
		parsed.Group = &group
	}

	if info, ok := fields[pattern.GroupInfo]; ok {
		parsed.Source = classify(info, set.Source(), pattern.GroupSource)
		parsed.VideoCodec = classify(info, set.VideoCodec(), pattern.GroupVideoCodec)
		parsed.AudioCodec = classify(info, set.AudioCodec(), pattern.GroupAudioCodec)
	}

	if disk, ok := fields[pattern.GroupDisk]; ok {
		parsed.DiskNumber = parseDiskNumber(disk, set.DiskNumber())
	}

	return parsed
}

func hasRequired(f Fields) bool {
	return f[pattern.GroupName] != "" && f[pattern.GroupExt] != ""
}

func normalizeTitle(name string, separator *regexp.Regexp, titleCase bool) string {
	parts := separator.Split(name, -1)
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			words = append(words, p)
		}
	}

	title := strings.Join(words, " ")
	if titleCase {
		title = cases.Title(language.Und, cases.NoLower).String(title)
	}

	return title
}

func parseYear(s string) *int {
	if s == "" {
		return nil
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &year
}

// classify returns the leftmost match of re within info. The named group is used when
// the pattern defines one, otherwise the whole match.
func classify(info string, re *regexp.Regexp, group string) *string {
	match := re.FindStringSubmatch(info)
	if match == nil {
		return nil
	}

	value := match[0]
	if i := re.SubexpIndex(group); i > 0 {
		value = match[i]
	}

	if value == "" {
		return nil
	}

	return &value
}

func parseDiskNumber(disk string, re *regexp.Regexp) *int {
	match := re.FindStringSubmatch(disk)
	if match == nil {
		return nil
	}

	i := re.SubexpIndex(pattern.GroupNumber)
	if i < 0 {
		return nil
	}

	n, err := strconv.Atoi(match[i])
	if err != nil {
		return nil
	}

	return &n
}
