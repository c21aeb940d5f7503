//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/imsdl/internal/util"
)

func init() {
	if !util.IsRunFromGUI() {
		return
	}
	if len(os.Args) < 2 || os.Args[1] != "inspect" {
		slog.Info("Detected GUI startup, injecting 'inspect' argument")
		slog.Warn("Run from a CLI for more options!")
		args := make([]string, 0, len(os.Args)+1)
		args = append(args, os.Args[0], "inspect")
		args = append(args, os.Args[1:]...)
		os.Args = args
	}
}
