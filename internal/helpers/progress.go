package helpers

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

type ProgressBar struct {
	Set      func(int)
	Add      func(int)
	Describe func(string)
	Close    func()
}

func CreateProgressBar(total int, label string) ProgressBar {
	return CreateProgressBarForWriter(os.Stderr, total, label)
}

func CreateProgressBarForWriter(w io.Writer, total int, label string) ProgressBar {
	p := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(w, "\n")
		}),
	)
	return ProgressBar{
		func(i int) {
			_ = p.Set(i)
		}, func(i int) {
			_ = p.Add(i)
		}, func(s string) {
			p.Describe(s)
		}, func() {
			_ = p.Finish()
			_ = p.Close()
		},
	}
}
