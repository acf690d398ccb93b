package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/internal/rps/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := rps(); err != nil {
		logrus.Fatal(err)
	}
}

func rps() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
