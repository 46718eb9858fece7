package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/randalmurphal/tasklist/task"
)

// Template names.
const (
	Menu  = "menu"
	Tasks = "tasks"
)

// DefaultTimeFormat is the creation time layout used by the timefmt function.
const DefaultTimeFormat = "2006-01-02 15:04"

// embeddedPrompts holds the default views compiled into the binary.
//
//go:embed prompts/*.txt
var embeddedPrompts embed.FS

// Loader loads and renders view templates.
type Loader struct {
	dirs    []string                      // Directories to search
	cache   map[string]*template.Template // Cached templates
	funcMap template.FuncMap              // Template functions
}

// NewLoader creates a loader. Templates in dir (when non-empty) override
// the embedded defaults of the same name.
func NewLoader(dir string) *Loader {
	l := &Loader{
		cache:   make(map[string]*template.Template),
		funcMap: defaultPromptFuncMap(),
	}
	if dir != "" {
		l.dirs = []string{dir}
	}
	return l
}

// Clone returns a loader with the same search dirs and functions and an
// empty cache. Functions added to the clone do not affect l.
func (l *Loader) Clone() *Loader {
	return &Loader{
		dirs:    slices.Clone(l.dirs),
		cache:   make(map[string]*template.Template),
		funcMap: maps.Clone(l.funcMap),
	}
}

// AddSearchDir adds a directory to search before the existing ones.
func (l *Loader) AddSearchDir(dir string) {
	l.dirs = append([]string{dir}, l.dirs...)
	l.ClearCache()
}

// AddFunc adds or replaces a template function. Cached templates are
// dropped so the function takes effect on the next render.
func (l *Loader) AddFunc(name string, fn any) {
	l.funcMap[name] = fn
	l.ClearCache()
}

// Load renders a template without variables.
func (l *Loader) Load(name string) (string, error) {
	return l.LoadWithVars(name, nil)
}

// LoadWithVars renders a template with the given variables.
func (l *Loader) LoadWithVars(name string, vars map[string]any) (string, error) {
	tmpl, err := l.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}

	return buf.String(), nil
}

// Exists checks if a template exists.
func (l *Loader) Exists(name string) bool {
	_, err := l.loadRaw(name)
	return err == nil
}

// List returns all available template names, sorted.
func (l *Loader) List() ([]string, error) {
	names := make(map[string]bool)

	for _, dir := range l.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		addTemplateNames(names, entries)
	}

	entries, err := embeddedPrompts.ReadDir("prompts")
	if err != nil {
		return nil, err
	}
	addTemplateNames(names, entries)

	result := make([]string, 0, len(names))
	for name := range names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result, nil
}

func addTemplateNames(names map[string]bool, entries []os.DirEntry) {
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".txt") {
			names[strings.TrimSuffix(entry.Name(), ".txt")] = true
		}
	}
}

// getTemplate loads and caches a template.
func (l *Loader) getTemplate(name string) (*template.Template, error) {
	if tmpl, ok := l.cache[name]; ok {
		return tmpl, nil
	}

	content, err := l.loadRaw(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(l.funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	l.cache[name] = tmpl
	return tmpl, nil
}

// loadRaw loads raw template content without parsing.
func (l *Loader) loadRaw(name string) (string, error) {
	filename := name + ".txt"

	for _, dir := range l.dirs {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err == nil {
			return string(data), nil
		}
	}

	data, err := embeddedPrompts.ReadFile("prompts/" + filename)
	if err != nil {
		return "", fmt.Errorf("prompt not found: %s", name)
	}

	return string(data), nil
}

// ClearCache clears the template cache.
func (l *Loader) ClearCache() {
	l.cache = make(map[string]*template.Template)
}

// defaultPromptFuncMap returns default template functions.
func defaultPromptFuncMap() template.FuncMap {
	return template.FuncMap{
		"title":   cases.Title(language.English).String,
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"trim":    strings.TrimSpace,
		"default": defaultValue,
		"symbol":  task.Status.Symbol,
		"timefmt": func(t time.Time) string { return t.Format(DefaultTimeFormat) },
		"deadline": func(t task.Task) string {
			text, _ := t.Deadline.Value()
			return text
		},
	}
}

// defaultValue returns the default if value is empty.
func defaultValue(defaultVal, value any) any {
	if value == nil {
		return defaultVal
	}
	if s, ok := value.(string); ok && s == "" {
		return defaultVal
	}
	return value
}
