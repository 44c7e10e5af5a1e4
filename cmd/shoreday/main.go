package main

import (
	"os"

	"github.com/shoreday/shoreday/app"
	"github.com/shoreday/shoreday/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
