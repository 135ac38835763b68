package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// carriesInput reports whether cmd is one of meow's own commands, all of
// which take exactly one INPUT.
func carriesInput(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return true
}

// reorderInput accepts the INPUT-first form "meow [flags] <INPUT> <COMMAND> ..."
// by moving INPUT to just after the subcommand name, which is where cobra
// expects it. Any other argument list is returned unchanged.
func reorderInput(root *cobra.Command, args []string) []string {
	positions := positionals(root, args)
	if len(positions) < 2 {
		return args
	}

	input, sub := positions[0], positions[1]
	if isSubcommand(root, args[input]) || !isSubcommand(root, args[sub]) {
		return args
	}

	out := make([]string, 0, len(args))
	out = append(out, args[:input]...)
	out = append(out, args[input+1:sub+1]...)
	out = append(out, args[input])
	out = append(out, args[sub+1:]...)
	return out
}

// positionals returns the indexes of the first two non-flag arguments,
// skipping the values of root flags that take one. Scanning stops at "--".
func positionals(root *cobra.Command, args []string) []int {
	var found []int
	for i := 0; i < len(args) && len(found) < 2; i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return found
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if strings.Contains(name, "=") {
				continue
			}
			if takesValue(root.PersistentFlags().Lookup(name)) || takesValue(root.Flags().Lookup(name)) {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if shorthandNeedsNext(root, arg[1:]) {
				i++
			}
		default:
			found = append(found, i)
		}
	}
	return found
}

// shorthandNeedsNext walks a shorthand group such as "vv" or "vc" and
// reports whether its last value-taking flag reads the next argument.
func shorthandNeedsNext(root *cobra.Command, group string) bool {
	for j := 0; j < len(group); j++ {
		name := group[j : j+1]
		flag := root.PersistentFlags().ShorthandLookup(name)
		if flag == nil {
			flag = root.Flags().ShorthandLookup(name)
		}
		if !takesValue(flag) {
			continue
		}
		// "-cFILE" and "-c=FILE" carry the value inline.
		return j == len(group)-1
	}
	return false
}

func takesValue(flag *pflag.Flag) bool {
	return flag != nil && flag.NoOptDefVal == ""
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, c := range root.Commands() {
		if c.Name() == "help" {
			continue
		}
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
