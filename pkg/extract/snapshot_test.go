package extract

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kasuboski/reelinfo/pkg/pattern"
)

func TestExtractReleaseNames(t *testing.T) {
	names := []string{
		"The.Matrix.1999.BluRay.x264.DTS-GROUP.mkv",
		"The.Matrix.(1999).BDRip.XviD.AC3-[GROUP].CD1.avi",
		"Heat_1995.(1995).DVDRip.XviD.AC3-XYZ.CD2.avi",
		"Alien.1979.DVDRip.XviD-GRP.avi",
		"Alien.1979.x264-GRP.MKV",
		"Blade.Runner.1982.BDRip.x264.DTS-RLS.mp4",
		"Don't.Look.Now.1973.TVRip.DivX-OLD.avi",
		"Some.Movie.2010.CAM-NOGRP.mkv",
		"Some.Movie.2010.HDTVRip.H264-NOGRP.mkv",
		"home video.mp4",
		"notes.txt",
	}

	set := pattern.Default()
	for _, name := range names {
		snaps.MatchSnapshot(t, name, fmt.Sprint(Extract("/movies/"+name, set)))
	}
}
