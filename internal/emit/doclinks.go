package emit

// DocLink points a set of literals at a reference page.
type DocLink struct {
	Label    string   `toml:"label"`
	URL      string   `toml:"url"`
	Literals []string `toml:"literals"`
}

type docIndex map[string]DocLink

func indexDocs(links []DocLink) docIndex {
	idx := make(docIndex)
	for _, l := range links {
		if l.URL == "" {
			continue
		}
		for _, lit := range l.Literals {
			if _, dup := idx[lit]; !dup {
				idx[lit] = l
			}
		}
	}
	return idx
}

func (idx docIndex) lookup(lit string) (DocLink, bool) {
	l, ok := idx[lit]
	return l, ok
}
