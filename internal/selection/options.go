// Package selection turns command-line flags into generation options and
// decides which posts and static pages a generation pass works on.
package selection

import (
	"fmt"
	"strings"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/util/sets"
)

// Task names accepted by --tasks.
const (
	TaskPosts  = "posts"
	TaskStatic = "static"
)

// Options is the fully resolved configuration of one generation invocation.
type Options struct {
	// Slugs restricts the pass to these posts. Empty means the whole catalog.
	// Named posts are generated even when drafts or already generated.
	Slugs         []string
	IncludePosts  bool
	IncludeStatic bool
	// OnlyMissing skips posts and pages whose output already exists.
	OnlyMissing bool
	Help        bool
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Slugs:         []string{},
		IncludePosts:  true,
		IncludeStatic: true,
		OnlyMissing:   true,
		Help:          false,
	}
}

// ParseArgs parses generation flags in a single left-to-right pass. Each
// recognised flag takes effect immediately, so a later flag overrides the
// booleans an earlier one set. Unrecognised arguments are ignored, as is a
// space-separated flag whose value is missing.
//
// The only failure is an unknown --tasks token.
func ParseArgs(args []string) (Options, error) {
	opts := DefaultOptions()
	seen := sets.New[string]()

	for i := 0; i < len(args); i++ {
		name, value, hasValue := splitFlag(args[i])

		switch name {
		case "--slug", "--tasks":
			if !hasValue {
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
					continue
				}
				i++
				value = args[i]
			}
			if name == "--slug" {
				opts.Slugs = seen.AppendNew(opts.Slugs, splitList(value)...)
				continue
			}
			if err := applyTasks(&opts, value); err != nil {
				return Options{}, err
			}
		case "--posts-only":
			opts.IncludePosts = true
			opts.IncludeStatic = false
		case "--all-posts":
			opts.OnlyMissing = false
		case "--no-static":
			opts.IncludeStatic = false
		case "--help", "-h":
			opts.Help = true
		}
	}

	return opts, nil
}

func applyTasks(opts *Options, value string) error {
	posts, static := false, false
	for _, task := range splitList(value) {
		switch task {
		case TaskPosts:
			posts = true
		case TaskStatic:
			static = true
		default:
			return foundationerrors.ValidationError(
				fmt.Sprintf("Unknown task %q. Use %q or %q.", task, TaskPosts, TaskStatic),
			).WithContext("flag", "--tasks").Build()
		}
	}
	opts.IncludePosts = posts
	opts.IncludeStatic = static
	return nil
}

// splitFlag splits "--name=value" forms. Only --slug and --tasks take values.
func splitFlag(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "--") {
		return arg, "", false
	}
	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		return arg[:eq], arg[eq+1:], true
	}
	return arg, "", false
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
