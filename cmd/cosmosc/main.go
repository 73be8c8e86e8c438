package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/agenthands/cosmosc/pkg/compiler/cosmos"
)

const (
	appName     = "cosmosc"
	historyFile = ".cosmos_history"
	promptMain  = ">>> "
)

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		os.Exit(cmdBuild(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(cosmos.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Cosmos compiler %s

Usage:
  %s build <file.cos> [-o out.c]   Compile a source file to C.
  %s repl                          Start the interactive compiler.
  %s version                       Print the compiler version.

`, cosmos.Version, appName, appName, appName)
}

func cmdBuild(args []string) int {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outPath := fs.String("o", "out.c", "output file for the generated C")
	verbose := fs.Bool("v", false, "verbose logging")

	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(os.Stderr, "usage: %s build <file.cos> [-o out.c]\n", appName)
		return 2
	}
	srcPath := args[0]
	fs.Parse(args[1:])

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	src, err := os.ReadFile(srcPath)
	if err != nil {
		log.WithError(err).Errorf("cannot read %s", srcPath)
		return 1
	}

	log.WithFields(logrus.Fields{
		"source": srcPath,
		"bytes":  len(src),
	}).Debug("compiling")

	out, err := cosmos.Compile(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		return 1
	}

	if err := os.WriteFile(*outPath, []byte(out), 0o644); err != nil {
		log.WithError(err).Errorf("cannot write %s", *outPath)
		return 1
	}

	log.WithFields(logrus.Fields{
		"source": srcPath,
		"output": *outPath,
	}).Info("compiled")
	fmt.Println(color.Green(fmt.Sprintf("%s -> %s", filepath.Base(srcPath), *outPath)))
	return 0
}

// cmdRepl accumulates a Cosmos program line by line and compiles it on
// demand, printing the generated C.
func cmdRepl() int {
	fmt.Printf("Cosmos %s interactive compiler\n", cosmos.Version)
	fmt.Println("Type a program line by line. :compile emits C, :list shows the buffer,")
	fmt.Println(":clear resets, :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var program []string
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			return 1
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(line) {
			case ":quit":
				return 0
			case ":clear":
				program = program[:0]
			case ":list":
				for _, l := range program {
					fmt.Println(l)
				}
			case ":compile":
				out, err := cosmos.Compile(strings.Join(program, "\n"))
				if err != nil {
					fmt.Fprintln(os.Stderr, color.Red(err.Error()))
					continue
				}
				fmt.Print(out)
			default:
				fmt.Println("unknown command; :compile :list :clear :quit")
			}
			continue
		}

		program = append(program, line)
	}
}
