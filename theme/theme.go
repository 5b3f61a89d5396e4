package theme

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"go.uber.org/multierr"
)

// ManifestName is the file name of theme manifests of built-in themes.
const ManifestName = "theme.toml"

//go:embed styles
var builtin embed.FS

// ErrUnknownTheme is returned by Load for names other than the built-in ones.
var ErrUnknownTheme = errors.New("unknown theme")

// ErrCyclicTheme is returned for manifests which (indirectly) extend
// themselves.
var ErrCyclicTheme = errors.New("cyclic theme extension")

// Manifest describes the composition of a theme.
type Manifest struct {
	Name    string   `toml:"name"`
	Extends string   `toml:"extends"`
	Sources []string `toml:"sources"`
}

var cache sync.Map // theme name -> *cssom.StyleSheet

// Names returns the names of the built-in themes in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(builtin, "styles")
	if err != nil {
		panic(err) // embedded directory is always present
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Load returns the style sheet of a built-in theme. Style sheets are
// immutable, so the result is shared between callers.
func Load(name string) (*cssom.StyleSheet, error) {
	if sheet, ok := cache.Load(name); ok {
		return sheet.(*cssom.StyleSheet), nil
	}
	p := path.Join("styles", name, ManifestName)
	if _, err := fs.Stat(builtin, p); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	sheet, err := FromManifest(builtin, p)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded theme %q with %d rules", name, sheet.Len())
	cache.Store(name, sheet)
	return sheet, nil
}

// FromManifest builds a theme from a TOML manifest located at path within
// fsys. Source files and base manifests are looked up relative to the
// directory of the manifest referring to them.
//
// All source files are parsed, even if some of them contain errors. Errors
// are collected and returned together (see package multierr), and the
// returned sheet holds the rules of all source files which could be parsed.
func FromManifest(fsys fs.FS, manifest string) (*cssom.StyleSheet, error) {
	return fromManifest(fsys, manifest, map[string]bool{})
}

func fromManifest(fsys fs.FS, manifest string, visited map[string]bool) (*cssom.StyleSheet, error) {
	manifest = path.Clean(manifest)
	if visited[manifest] {
		return nil, fmt.Errorf("%w: %s", ErrCyclicTheme, manifest)
	}
	visited[manifest] = true
	m, err := ReadManifest(fsys, manifest)
	if err != nil {
		return nil, err
	}
	dir := path.Dir(manifest)
	var sheet *cssom.StyleSheet
	var errs error
	if m.Extends != "" {
		base, err := fromManifest(fsys, path.Join(dir, m.Extends), visited)
		if base == nil {
			return nil, err
		}
		sheet = base
		errs = multierr.Append(errs, err)
	}
	for _, src := range m.Sources {
		data, err := fs.ReadFile(fsys, path.Join(dir, src))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		s, err := cssom.Parse(string(data))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("theme %s, %s: %w", m.Name, src, err))
			continue
		}
		sheet = sheet.Append(s)
	}
	if sheet == nil {
		sheet = cssom.NewStyleSheet()
	}
	return sheet, errs
}

// ReadManifest decodes a theme manifest. A manifest must name the theme.
func ReadManifest(fsys fs.FS, manifest string) (Manifest, error) {
	var m Manifest
	data, err := fs.ReadFile(fsys, manifest)
	if err != nil {
		return m, err
	}
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return m, fmt.Errorf("theme manifest %s: %w", manifest, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("theme manifest %s: ignoring key %q", manifest, key.String())
	}
	if m.Name == "" {
		return m, fmt.Errorf("theme manifest %s: missing name", manifest)
	}
	return m, nil
}
