// cmd/genome-metrics/main.go
package main

import (
	"gmetrics/internal/app"
	"gmetrics/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
