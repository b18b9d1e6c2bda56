package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Command is a single devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry dispatches the command line to registered commands
type Registry struct {
	commands map[string]Command
	out      io.Writer
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		out:      os.Stdout,
	}
}

func (r *Registry) Register(cmds ...Command) {
	for _, cmd := range cmds {
		r.commands[cmd.Name()] = cmd
	}
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the registered commands sorted by name
func (r *Registry) List() []Command {
	return slices.SortedFunc(maps.Values(r.commands), func(a, b Command) int {
		return cmp.Compare(a.Name(), b.Name())
	})
}

func (r *Registry) PrintHelp() {
	fmt.Fprintln(r.out, "Usage: devtool <command> [args...]")
	fmt.Fprintln(r.out, "\nAvailable Commands:")

	cmds := r.List()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(r.out, "  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
}

// Dispatch runs the command named by args[0] and returns the process exit code
func (r *Registry) Dispatch(args []string) int {
	if len(args) == 0 {
		r.PrintHelp()
		return 1
	}

	cmd, ok := r.Get(args[0])
	if !ok {
		PrintError("Unknown command: %s", args[0])
		r.PrintHelp()
		return 1
	}

	if err := cmd.Run(args[1:]); err != nil {
		var usage *usageErr
		if errors.As(err, &usage) {
			PrintError("%v", err)
			return 2
		}
		PrintError("%s: %v", cmd.Name(), err)
		return 1
	}
	return 0
}

type usageErr struct {
	usage string
}

func (e *usageErr) Error() string {
	return "usage: devtool " + e.usage
}

func usageError(usage string) error {
	return &usageErr{usage: usage}
}
