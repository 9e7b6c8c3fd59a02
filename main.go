package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jconsidi/cutechess/internal/cutechess/cmd"
)

// cutechess reads, validates and canonicalizes PGN game collections.
// All the command wiring lives in internal/cutechess/cmd; this entry
// point only configures the logger and hands over os.Args.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
