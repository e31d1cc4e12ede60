package models

import "strings"

// CommandType enumerates the coordinator's chat commands.
type CommandType string

const (
	CommandOccupancy CommandType = "occupancy"
	CommandCheckups  CommandType = "checkups"
	CommandHome      CommandType = "home"
	CommandHelp      CommandType = "help"
	CommandUnknown   CommandType = "unknown"
)

// Command is a parsed instruction extracted from WhatsApp text.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command from free-form text. The leading slash is
// optional and matching is case-insensitive; arguments keep their case.
func ParseCommand(message string) Command {
	cmd := Command{Type: CommandUnknown, Raw: message}

	tokens := strings.Fields(message)
	if len(tokens) == 0 {
		return cmd
	}

	switch head := CommandType(strings.ToLower(strings.TrimPrefix(tokens[0], "/"))); head {
	case CommandOccupancy, CommandCheckups, CommandHome, CommandHelp:
		cmd.Type = head
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}
	return cmd
}
