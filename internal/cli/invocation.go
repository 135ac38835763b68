package cli

// Command identifies which branch of the command tree was selected.
type Command int

const (
	// CommandProcess transforms the input file (no subcommand).
	CommandProcess Command = iota
	// CommandTest runs the self-check stub.
	CommandTest
	// CommandConfig prints the resolved configuration.
	CommandConfig
)

// Invocation holds everything parsed from the command line for one run.
type Invocation struct {
	ConfigPath string
	Input      string
	Verbose    int
	Command    Command
	Debug      bool
}

func (c Command) String() string {
	switch c {
	case CommandTest:
		return "test"
	case CommandConfig:
		return "config"
	default:
		return "process"
	}
}
