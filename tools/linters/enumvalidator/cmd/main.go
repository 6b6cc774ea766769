package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"sprintsync.app/retro/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
