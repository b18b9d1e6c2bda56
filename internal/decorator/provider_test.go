package decorator

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestProvider_CachesPerLocale(t *testing.T) {
	fsys := testFS("true")
	p, err := NewProvider(fsys, "config.xml", 0)
	require.NoError(t, err)

	d, err := p.Decorator(language.German)
	require.NoError(t, err)
	out, err := d.Decorate("CMS")
	require.NoError(t, err)
	assert.Contains(t, out, "Content-Management-System")

	// the cached configuration survives changes to the underlying files
	fsys["decorations/abbr_de.txt"] = &fstest.MapFile{Data: []byte("CMS|Redaktionssystem\n")}
	d, err = p.Decorator(language.German)
	require.NoError(t, err)
	out, _ = d.Decorate("CMS")
	assert.Contains(t, out, "Content-Management-System")

	p.Purge()
	d, err = p.Decorator(language.German)
	require.NoError(t, err)
	out, _ = d.Decorate("CMS")
	assert.Contains(t, out, "Redaktionssystem")
}

func TestProvider_LoadError(t *testing.T) {
	p, err := NewProvider(fstest.MapFS{}, "missing.xml", 4)
	require.NoError(t, err)
	_, err = p.Decorator(language.English)
	assert.Error(t, err)
}
