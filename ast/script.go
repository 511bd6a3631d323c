package ast

// Script is an ordered sequence of commands, the top-level unit a solver
// consumes from an input file.
type Script struct {
	Commands []Command
}

func NewScript(commands ...Command) Script {
	return Script{Commands: commands}
}
