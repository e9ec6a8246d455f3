package main

import (
	"github.com/humanbelnik/kinomatch/core/internal/app"
	"github.com/humanbelnik/kinomatch/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
