package runner

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// taskProgress renders a single-task progress bar on stderr while the engine
// call blocks. Disabled instances are no-ops so the runner stays testable.
type taskProgress struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool
}

func startTaskProgress(config ProgressConfig, description string) *taskProgress {
	if !config.Enabled {
		return &taskProgress{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	bar := container.AddBar(1,
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)

	return &taskProgress{
		container: container,
		bar:       bar,
		enabled:   true,
	}
}

func (tp *taskProgress) Complete() {
	if !tp.enabled || tp.bar == nil {
		return
	}
	tp.bar.Increment()
	tp.container.Wait()
}

func (tp *taskProgress) Abandon() {
	if !tp.enabled || tp.container == nil {
		return
	}
	tp.bar.Abort(true)
	tp.container.Wait()
}
