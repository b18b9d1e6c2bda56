package domain

import "maps"

// SitemapEntry is one node of the site navigation tree.
type SitemapEntry struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	SitePath    string            `json:"site_path"`
	ParentPath  string            `json:"parent_path,omitempty"`
	Position    int               `json:"position"`
	Properties  map[string]string `json:"properties,omitempty"`
	HasChildren bool              `json:"has_children"`
}

// Clone returns a deep copy of the entry.
func (e *SitemapEntry) Clone() *SitemapEntry {
	if e == nil {
		return nil
	}
	c := *e
	c.Properties = maps.Clone(e.Properties)
	return &c
}

// CloneSitemapEntries deep copies a list of entries.
func CloneSitemapEntries(entries []SitemapEntry) []SitemapEntry {
	if entries == nil {
		return nil
	}
	out := make([]SitemapEntry, len(entries))
	for i := range entries {
		out[i] = *entries[i].Clone()
	}
	return out
}
