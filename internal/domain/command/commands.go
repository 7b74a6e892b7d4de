package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/forecast-bot/internal/domain"
)

var ErrUnknownCommand = errors.New("unknown command")

type CommandType string

const (
	CmdStart    CommandType = "start"
	CmdStop     CommandType = "stop"
	CmdHelp     CommandType = "help"
	CmdLocation CommandType = "location"
	CmdTime     CommandType = "time"
	CmdLanguage CommandType = "language"
	CmdCurrent  CommandType = "current"
	CmdInfo     CommandType = "info"
	CmdList     CommandType = "list"
	CmdNew      CommandType = "new"
	CmdRename   CommandType = "rename"
	CmdChange   CommandType = "change"
	CmdDelete   CommandType = "delete"
)

type Command struct {
	Type CommandType
	// Arg is the trimmed text after the command, empty when none was given
	Arg string
	Raw string
}

// ParseCommand resolves a bot command name (without the leading slash or @botname)
// and its argument text
func ParseCommand(name, args string) (*Command, error) {
	cmd := &Command{
		Arg: strings.TrimSpace(args),
		Raw: name,
	}

	switch strings.ToLower(name) {
	case "start":
		cmd.Type = CmdStart
	case "stop":
		cmd.Type = CmdStop
	case "help":
		cmd.Type = CmdHelp
	case "location", "loc":
		cmd.Type = CmdLocation
	case "time":
		cmd.Type = CmdTime
	case "language", "lang":
		cmd.Type = CmdLanguage
	case "current", "now":
		cmd.Type = CmdCurrent
	case "info":
		cmd.Type = CmdInfo
	case "list":
		cmd.Type = CmdList
	case "new":
		cmd.Type = CmdNew
	case "rename":
		cmd.Type = CmdRename
	case "change":
		cmd.Type = CmdChange
	case "delete":
		cmd.Type = CmdDelete
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return cmd, nil
}

type CallbackType string

const (
	CallbackChange CallbackType = "change"
	CallbackDelete CallbackType = "delete"
)

// Callback is a parsed inline keyboard action on a named profile
type Callback struct {
	Type        CallbackType
	ProfileName string
}

// ParseCallback recognizes the profile actions encoded by ChangeData and DeleteData
func ParseCallback(data string) (*Callback, bool) {
	if name, ok := strings.CutPrefix(data, domain.CallbackChangeProfile); ok {
		return &Callback{Type: CallbackChange, ProfileName: name}, true
	}
	if name, ok := strings.CutPrefix(data, domain.CallbackDeleteProfile); ok {
		return &Callback{Type: CallbackDelete, ProfileName: name}, true
	}
	return nil, false
}

func ChangeData(profileName string) string { return domain.CallbackChangeProfile + profileName }

func DeleteData(profileName string) string { return domain.CallbackDeleteProfile + profileName }

// Description is an entry of the bot's command menu
type Description struct {
	Command     string
	Description string
}

// Menu lists the commands advertised to Telegram clients
func Menu() []Description {
	return []Description{
		{Command: "start", Description: "Register and show the welcome message"},
		{Command: "help", Description: "Show the instructions for usage"},
		{Command: "location", Description: "Show or set the location"},
		{Command: "time", Description: "Show or set the time"},
		{Command: "current", Description: "Show current weather"},
		{Command: "info", Description: "Show current location and time"},
		{Command: "language", Description: "Set the language"},
		{Command: "list", Description: "Show all profiles"},
		{Command: "new", Description: "Create new profile"},
		{Command: "rename", Description: "Rename default profile"},
		{Command: "change", Description: "Change default profile"},
		{Command: "delete", Description: "Delete a profile"},
		{Command: "stop", Description: "Delete your account"},
	}
}
