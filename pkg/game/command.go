package game

import "strings"

type CommandType string

const (
	CmdHelp      CommandType = "help"
	CmdLook      CommandType = "look"
	CmdInventory CommandType = "inventory"
	CmdStatus    CommandType = "status"
	CmdMove      CommandType = "move"
	CmdPickup    CommandType = "pickup"
	CmdDrop      CommandType = "drop"
	CmdUse       CommandType = "use"
	CmdExamine   CommandType = "examine"
	CmdInteract  CommandType = "interact"
	CmdWeather   CommandType = "weather"
	CmdSave      CommandType = "save"
	CmdLoad      CommandType = "load"
	CmdSaves     CommandType = "saves"
	CmdQuit      CommandType = "quit"
	CmdNone      CommandType = "" // unrecognized or empty input
)

var commandAliases = map[string]CommandType{
	"help":      CmdHelp,
	"h":         CmdHelp,
	"?":         CmdHelp,
	"look":      CmdLook,
	"l":         CmdLook,
	"inventory": CmdInventory,
	"inv":       CmdInventory,
	"i":         CmdInventory,
	"status":    CmdStatus,
	"move":      CmdMove,
	"go":        CmdMove,
	"pickup":    CmdPickup,
	"take":      CmdPickup,
	"get":       CmdPickup,
	"drop":      CmdDrop,
	"use":       CmdUse,
	"examine":   CmdExamine,
	"x":         CmdExamine,
	"interact":  CmdInteract,
	"weather":   CmdWeather,
	"save":      CmdSave,
	"load":      CmdLoad,
	"saves":     CmdSaves,
	"quit":      CmdQuit,
	"exit":      CmdQuit,
	"q":         CmdQuit,
}

// ParseCommand splits input into a command and its argument. The verb is
// matched case-insensitively; the argument keeps the player's spelling.
func ParseCommand(input string) (CommandType, string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return CmdNone, ""
	}
	verb, arg, _ := strings.Cut(trimmed, " ")
	cmd, ok := commandAliases[strings.ToLower(verb)]
	if !ok {
		return CmdNone, ""
	}
	return cmd, strings.TrimSpace(arg)
}

// HelpText lists the commands a player can type.
const HelpText = `Available commands:
  look (l)            describe where you are
  inventory (i)       list what you carry
  status              show health, inventory and gold
  move <place> (go)   travel to a connected location
  pickup <item>       pick up an item (take)
  drop <item>         drop an item here
  use <item>          use an item you carry
  examine <item>      look closely at an item
  interact            see what there is to do here
  weather             check the weather
  save                save the game
  load <file>         load a saved game
  saves               list saved games
  help                show this list
  quit (q)            leave the game`
