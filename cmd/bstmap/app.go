package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/DerGut/bstmap/pkg/dict"
	"github.com/DerGut/bstmap/pkg/entryfile"
	"github.com/DerGut/bstmap/pkg/treemap"
)

var errKeyNotFound = errors.New("key not found")

type app struct {
	fs  afero.Fs
	log *logrus.Logger
}

func newApp(fs afero.Fs, stdout, stderr io.Writer) *cli.App {
	a := &app{
		fs:  fs,
		log: logrus.New(),
	}
	a.log.SetOutput(stderr)

	inputFlags := []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "file to import entries from",
			EnvVars:  []string{"BSTMAP_INPUT"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "input format, text or cbor; guessed from the file extension when empty",
			EnvVars: []string{"BSTMAP_FORMAT"},
		},
	}

	return &cli.App{
		Name:      "bstmap",
		Usage:     "load key/value files into a binary search tree map and inspect it",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (trace, debug, info, warn, error)",
				EnvVars: []string{"BSTMAP_LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			level, err := logrus.ParseLevel(cctx.String("log-level"))
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}

			a.log.SetLevel(level)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "put two words and print them back",
				Action: a.runDemo,
			},
			{
				Name:   "keys",
				Usage:  "print the imported keys in ascending order",
				Flags:  inputFlags,
				Action: a.runKeys,
			},
			{
				Name:   "values",
				Usage:  "print every distinct imported value",
				Flags:  inputFlags,
				Action: a.runValues,
			},
			{
				Name:      "get",
				Usage:     "print the value stored under a key",
				ArgsUsage: "KEY",
				Flags:     inputFlags,
				Action:    a.runGet,
			},
			{
				Name:   "tree",
				Usage:  "print the shape of the tree",
				Flags:  inputFlags,
				Action: a.runTree,
			},
		},
	}
}

func (a *app) runDemo(cctx *cli.Context) error {
	m := treemap.New[string, int]()

	if err := m.PutAll(dict.Pairs([]dict.Entry[string, int]{
		{Key: "Word1", Value: 1},
		{Key: "Word2", Value: 2},
	})); err != nil {
		return fmt.Errorf("put: %w", err)
	}

	value, _ := m.Get("Word1")
	fmt.Fprintln(cctx.App.Writer, value)

	for _, key := range m.KeySet() {
		value, _ := m.Get(key)
		fmt.Fprintf(cctx.App.Writer, "%s, %d\n", key, value)
	}

	return nil
}

func (a *app) runKeys(cctx *cli.Context) error {
	m, err := a.load(cctx)
	if err != nil {
		return err
	}

	for _, key := range m.KeySet() {
		fmt.Fprintln(cctx.App.Writer, key)
	}

	return nil
}

func (a *app) runValues(cctx *cli.Context) error {
	m, err := a.load(cctx)
	if err != nil {
		return err
	}

	for _, value := range m.Values() {
		fmt.Fprintln(cctx.App.Writer, value)
	}

	return nil
}

func (a *app) runGet(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return fmt.Errorf("want exactly one KEY argument, got %d", cctx.NArg())
	}

	m, err := a.load(cctx)
	if err != nil {
		return err
	}

	key := cctx.Args().First()

	value, found := m.Get(key)
	if !found {
		return fmt.Errorf("%w: %s", errKeyNotFound, strconv.Quote(key))
	}

	fmt.Fprintln(cctx.App.Writer, value)

	return nil
}

func (a *app) runTree(cctx *cli.Context) error {
	m, err := a.load(cctx)
	if err != nil {
		return err
	}

	fmt.Fprint(cctx.App.Writer, m.Dump())

	return nil
}

func (a *app) load(cctx *cli.Context) (*treemap.Tree[string, string], error) {
	name := cctx.String("input")

	format, err := entryfile.ParseFormat(cctx.String("format"), name)
	if err != nil {
		return nil, err
	}

	log := a.log.WithFields(logrus.Fields{
		"input":  name,
		"format": format,
	})

	entries, err := entryfile.Read(a.fs, name, format)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	m := treemap.New[string, string]()
	if err := m.PutAll(dict.Pairs(entries)); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	log.WithFields(logrus.Fields{
		"entries": len(entries),
		"keys":    m.Size(),
	}).Debug("imported entries")

	return m, nil
}
