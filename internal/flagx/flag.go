// Package flagx helps components share os.Args: each config loader parses
// only the flags it owns, ignoring flags meant for other components.
package flagx

import "strings"

// FilterArgs returns the subset of args containing only the allowed flags
// and their values. Both "-f value" and "-f=value"/"--flag=value" forms are
// recognized. A token following an allowed flag is treated as its value
// unless it starts with a dash.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		keep[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := keep[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := keep[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
