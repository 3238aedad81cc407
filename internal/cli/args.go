package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// legacyFlags maps the historic multi-letter single-dash flags to their
// long names.
var legacyFlags = map[string]string{
	"eg": "example",
	"fr": "french",
	"de": "german",
}

// normalizeFlagName lets --fr, --de and --eg resolve to their long flags.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if long, ok := legacyFlags[name]; ok {
		name = long
	}
	return pflag.NormalizedName(name)
}

// NormalizeArgs rewrites single-dash long flags such as -fr into --fr so
// pflag does not read them as a group of shorthands. Rewriting stops at
// the first word of the phrase or at "--"; everything from there on is
// phrase text. Shorthand groups such as -dt are left alone.
func NormalizeArgs(cmd *cobra.Command, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return append(out, args[i:]...)
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		flag := lookupFlag(cmd, name)
		if flag != nil && len(name) > 1 && arg[1] != '-' {
			arg = "-" + arg
		}
		out = append(out, arg)

		// The value of --config file or --player mpv is not the phrase.
		if flag != nil && !hasValue && flag.NoOptDefVal == "" && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if name == "" {
		return nil
	}
	if len(name) == 1 {
		if f := cmd.Flags().ShorthandLookup(name); f != nil {
			return f
		}
		return cmd.PersistentFlags().ShorthandLookup(name)
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}
