package command

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "command")

// Router maps command names and aliases to commands. It is safe for
// concurrent use.
type Router struct {
	mu       sync.RWMutex
	byName   map[string]*Command
	commands []*Command

	ignoreBots bool
	ignoreSelf bool
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// IgnoreBots sets whether messages from bot accounts are dropped.
// The default is true.
func IgnoreBots(ignore bool) RouterOption {
	return func(r *Router) {
		r.ignoreBots = ignore
	}
}

// IgnoreSelf sets whether messages sent by the bot itself are dropped.
// The default is true.
func IgnoreSelf(ignore bool) RouterOption {
	return func(r *Router) {
		r.ignoreSelf = ignore
	}
}

// NewRouter returns an empty Router.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		byName:     make(map[string]*Command),
		ignoreBots: true,
		ignoreSelf: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ignores reports whether inv comes from an author the router drops.
func (r *Router) Ignores(inv Invocation) bool {
	if r.ignoreBots && inv.AuthorIsBot {
		return true
	}
	return r.ignoreSelf && inv.SelfID != "" && inv.AuthorID == inv.SelfID
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds cmd under its name and aliases, ignoring case.
func (r *Router) Register(cmd *Command) error {
	if cmd == nil || key(cmd.Name) == "" {
		return fmt.Errorf("register: command name is required")
	}
	if cmd.Handler == nil {
		return fmt.Errorf("register %s: handler is required", cmd.Name)
	}

	var names []string
	for _, n := range append([]string{cmd.Name}, cmd.Aliases...) {
		if k := key(n); k != "" && !slices.Contains(names, k) {
			names = append(names, k)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		if _, ok := r.byName[n]; ok {
			return fmt.Errorf("register %s: %w: %s", cmd.Name, ErrDuplicateCommand, n)
		}
	}
	for _, n := range names {
		r.byName[n] = cmd
	}
	r.commands = append(r.commands, cmd)

	log.WithField("command", cmd.Name).WithField("aliases", len(cmd.Aliases)).Debug("Registered command")
	return nil
}

// Lookup finds a command by name or alias, ignoring case.
func (r *Router) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[key(name)]
	return cmd, ok
}

// Commands returns the registered commands sorted by name.
func (r *Router) Commands() []*Command {
	r.mu.RLock()
	out := slices.Clone(r.commands)
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return key(out[i].Name) < key(out[j].Name) })
	return out
}

// Categories returns the distinct non-empty categories, sorted.
func (r *Router) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, c := range r.Commands() {
		if c.Category != "" && !seen[c.Category] {
			seen[c.Category] = true
			cats = append(cats, c.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// Category resolves name to a registered category, ignoring case.
func (r *Router) Category(name string) (string, bool) {
	for _, c := range r.Categories() {
		if strings.EqualFold(c, strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

// InCategory returns the commands in category, sorted by name.
func (r *Router) InCategory(category string) []*Command {
	var out []*Command
	for _, c := range r.Commands() {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out
}

// Dispatch runs the command named by inv. It returns ErrIgnoredAuthor,
// ErrUnknownCommand, ErrAccessDenied, a *UsageError, or whatever the
// handler returns.
func (r *Router) Dispatch(ctx context.Context, inv Invocation) error {
	if r.Ignores(inv) {
		return ErrIgnoredAuthor
	}
	if inv.Parsed == nil {
		return fmt.Errorf("dispatch: %w", ErrUnknownCommand)
	}
	cmd, ok := r.Lookup(inv.Command)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, inv.Command)
	}

	entry := log.WithField("command", cmd.Name).WithField("author", inv.AuthorID)
	if !cmd.Access.HasAccess(inv.AuthorID, inv.AuthorIsBot, inv.SelfID) {
		entry.Debug("Access denied")
		return fmt.Errorf("%s: %w", cmd.Name, ErrAccessDenied)
	}
	if len(inv.Args) < cmd.MinArgs {
		return &UsageError{Command: cmd, Got: len(inv.Args)}
	}

	inv.Resolved = cmd
	if err := cmd.Handler(ctx, inv); err != nil {
		entry.WithError(err).Warn("Command failed")
		return err
	}
	entry.Debug("Command handled")
	return nil
}

// Handle parses message with p and dispatches it. handled is false when the
// message is not a command or comes from an ignored author.
func (r *Router) Handle(ctx context.Context, p *Parser, message string, inv Invocation) (handled bool, err error) {
	if r.Ignores(inv) {
		return false, nil
	}
	parsed, ok := p.Parse(message)
	if !ok {
		return false, nil
	}
	inv.Parsed = parsed
	return true, r.Dispatch(ctx, inv)
}
