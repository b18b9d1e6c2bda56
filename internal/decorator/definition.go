package decorator

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Definition describes one kind of decoration and where its maps live.
type Definition struct {
	Name          string `xml:"name"`
	MarkFirst     bool   `xml:"-"`
	PreText       string `xml:"pretext"`
	PostText      string `xml:"posttext"`
	PreTextFirst  string `xml:"pretextfirst"`
	PostTextFirst string `xml:"posttextfirst"`
	// ConfigurationFile is the base map file; every file in the same
	// directory whose name starts with its stem is a map for this definition.
	ConfigurationFile string `xml:"filename"`
}

type mapFile struct {
	name   string
	locale language.Tag
}

// Bundle reads the decoration maps of d from fsys.
// With a locale, only maps for that language or without a locale are used;
// with language.Und every map is used. Localized maps are applied last so
// their descriptions win over generic ones.
func (d Definition) Bundle(fsys fs.FS, locale language.Tag) (*Bundle, error) {
	files, err := d.mapFiles(fsys)
	if err != nil {
		return nil, err
	}

	bundle := NewBundle(locale)
	for _, f := range files {
		if !localeMatches(locale, f.locale) {
			continue
		}
		if err := d.readMap(fsys, f, bundle); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

func (d Definition) mapFiles(fsys fs.FS) ([]mapFile, error) {
	dir := path.Dir(strings.TrimPrefix(d.ConfigurationFile, "/"))
	base := path.Base(d.ConfigurationFile)
	stem := strings.TrimSuffix(base, path.Ext(base))

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadMapDirFailed, dir, err)
	}

	var files []mapFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), stem) {
			continue
		}
		files = append(files, mapFile{
			name:   path.Join(dir, e.Name()),
			locale: mapLocale(e.Name(), stem),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		iu, ju := files[i].locale == language.Und, files[j].locale == language.Und
		if iu != ju {
			return iu
		}
		return files[i].name < files[j].name
	})
	return files, nil
}

func (d Definition) readMap(fsys fs.FS, f mapFile, bundle *Bundle) error {
	file, err := fsys.Open(f.name)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadMapFailed, f.name, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, description, ok := strings.Cut(line, MapSeparator)
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			slog.Debug(LogMsgMapLineSkipped, "file", f.name, "line", lineNo)
			continue
		}
		bundle.Put(&Decoration{
			Definition:  d,
			Key:         key,
			Description: strings.TrimSpace(description),
			Locale:      f.locale,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadMapFailed, f.name, err)
	}
	return nil
}

// mapLocale extracts the locale from names like abbr_de.txt; abbr.txt has none.
func mapLocale(name, stem string) language.Tag {
	rest := strings.TrimSuffix(strings.TrimPrefix(name, stem), path.Ext(name))
	if !strings.HasPrefix(rest, LocaleSeparator) {
		return language.Und
	}
	tag, err := language.Parse(strings.TrimPrefix(rest, LocaleSeparator))
	if err != nil {
		return language.Und
	}
	return tag
}

func localeMatches(want, have language.Tag) bool {
	if want == language.Und || have == language.Und {
		return true
	}
	wb, _ := want.Base()
	hb, _ := have.Base()
	return wb == hb
}
