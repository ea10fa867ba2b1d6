package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	app := newApp(afero.NewOsFs(), os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		logrus.New().WithError(err).Fatal("bstmap failed")
	}
}
