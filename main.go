// Hotseat is two-player chess on one screen, built with Ebitengine.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hailam/hotseat/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := hotseat(); err != nil {
		logrus.Fatal(err)
	}
}

func hotseat() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
