//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"audio-transcriber/internal/app/runner"
)

func InitializeRunner() *runner.Runner {
	wire.Build(runner.NewRunner, provideTranscriber, provideRunDAO, provideProgressConfig)
	return &runner.Runner{}
}
