// Package highlight renders text as ANSI-coloured terminal output.
//
// Syntax definitions and colour themes come from chroma. They are indexed
// into a process-wide registry the first time they are needed; the registry
// is never modified afterwards and is safe for concurrent use.
package highlight

import (
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/pkg/errors"
)

// Registry holds the loaded syntax definitions and colour themes.
type Registry struct {
	syntaxes map[string]chroma.Lexer
	plain    chroma.Lexer
	themes   map[string]*chroma.Style
}

var load = sync.OnceValue(func() *Registry {
	r := &Registry{
		syntaxes: make(map[string]chroma.Lexer),
		plain:    chroma.Coalesce(lexers.Fallback),
		themes:   make(map[string]*chroma.Style, len(styles.Registry)),
	}

	for _, l := range lexers.GlobalLexerRegistry.Lexers {
		cfg := l.Config()
		lexer := chroma.Coalesce(l)
		r.addSyntax(cfg.Name, lexer)
		for _, alias := range cfg.Aliases {
			r.addSyntax(alias, lexer)
		}
		for _, pattern := range cfg.Filenames {
			if ext := path.Ext(pattern); pattern == "*"+ext && !strings.ContainsAny(ext, "*?[") {
				r.addSyntax(strings.TrimPrefix(ext, "."), lexer)
			}
		}
	}

	for name, style := range styles.Registry {
		r.themes[name] = style
	}
	return r
})

// addSyntax registers a lexer under name; the first registration wins.
func (r *Registry) addSyntax(name string, l chroma.Lexer) {
	name = strings.ToLower(name)
	if name == "" {
		return
	}
	if _, ok := r.syntaxes[name]; !ok {
		r.syntaxes[name] = l
	}
}

// Default returns the process-wide registry, loading it on first use.
func Default() *Registry {
	return load()
}

// Syntax returns the syntax definition for a kind such as "json" or "yaml",
// or the plain-text definition when the kind is unknown.
func (r *Registry) Syntax(kind string) chroma.Lexer {
	if l, ok := r.syntaxes[strings.ToLower(kind)]; ok {
		return l
	}
	return r.plain
}

// Theme returns the colour theme with the given name.
func (r *Registry) Theme(name string) (*chroma.Style, bool) {
	s, ok := r.themes[name]
	return s, ok
}

// Themes returns all theme names, sorted.
func (r *Registry) Themes() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateTheme returns a ConfigError when name is set and not a known theme.
func ValidateTheme(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := Default().Theme(name); !ok {
		return errors.NewConfigError("theme", name, "unknown theme (see 'xcurl themes')")
	}
	return nil
}

// Highlight colours text for the given syntax kind with the named theme
// (the default theme when empty). Each line, including its terminating
// newline, is formatted as its own unit and the results are concatenated.
func Highlight(text, kind, theme string) (string, error) {
	r := Default()

	if theme == "" {
		theme = constants.DefaultTheme
	}
	style, ok := r.Theme(theme)
	if !ok {
		return "", errors.NewConfigError("theme", theme, "unknown theme (see 'xcurl themes')")
	}

	formatter := formatters.Get("terminal16m")
	it, err := r.Syntax(kind).Tokenise(nil, text)
	if err != nil {
		return "", errors.NewRenderError("highlight", err)
	}

	var b strings.Builder
	for _, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		if err := formatter.Format(&b, style, chroma.Literator(line...)); err != nil {
			return "", errors.NewRenderError("highlight", err)
		}
	}
	return b.String(), nil
}
