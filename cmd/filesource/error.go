package main

import "errors"

var (
	// ErrNoCommand occurs when the application is invoked without a command
	// and without the browser UI.
	ErrNoCommand = errors.New("no command given")

	// ErrUnknownCommand occurs when the application is invoked with a
	// command it does not implement.
	ErrUnknownCommand = errors.New("unknown command")
)
