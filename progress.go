package main

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

func newSplitBar(totalFiles int) *progressbar.ProgressBar {
	theme := progressbar.Theme{
		Saucer:        "=",
		SaucerHead:    ">",
		SaucerPadding: " ",
		BarStart:      "[",
		BarEnd:        "]",
	}
	return progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(theme),
		progressbar.OptionSetDescription("splitting"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}
