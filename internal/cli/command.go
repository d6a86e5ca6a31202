package cli

import "strings"

// Command is one entry of the shell menu.
type Command int

const (
	CommandUnknown Command = iota
	CommandList
	CommandYears
	CommandDegree
	CommandInput
	CommandClear
	CommandQuit
)

type menuOption struct {
	key         string
	command     Command
	description string
}

var menuOptions = []menuOption{
	{key: "a", command: CommandList, description: "show all module marks up-to-date."},
	{key: "b", command: CommandYears, description: "calculate averages per each academic year."},
	{key: "c", command: CommandDegree, description: "current full-degree average."},
	{key: "i", command: CommandInput, description: "input a new academic record."},
	{key: "l", command: CommandClear, description: "clear screen."},
	{key: "q", command: CommandQuit, description: "quit the program."},
}

// Commands returns the menu commands in display order.
func Commands() []Command {
	out := make([]Command, len(menuOptions))
	for i, opt := range menuOptions {
		out[i] = opt.command
	}

	return out
}

// ParseCommand maps user input to a command. Input is trimmed and
// case-insensitive; anything that is not a menu key is CommandUnknown.
func ParseCommand(input string) Command {
	key := strings.ToLower(strings.TrimSpace(input))

	for _, opt := range menuOptions {
		if opt.key == key {
			return opt.command
		}
	}

	return CommandUnknown
}

// Key returns the menu key of c, or "" for CommandUnknown.
func (c Command) Key() string {
	for _, opt := range menuOptions {
		if opt.command == c {
			return opt.key
		}
	}

	return ""
}

// Description returns the menu text of c.
func (c Command) Description() string {
	for _, opt := range menuOptions {
		if opt.command == c {
			return opt.description
		}
	}

	return ""
}

func (c Command) String() string {
	switch c {
	case CommandList:
		return "list"
	case CommandYears:
		return "years"
	case CommandDegree:
		return "degree"
	case CommandInput:
		return "input"
	case CommandClear:
		return "clear"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}
