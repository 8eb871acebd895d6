package articles

import "embed"

//go:embed content/*.md
var contentFS embed.FS

// builtinPosts lists the articles shipped inside the binary, in the order
// they appear in navigation.
var builtinPosts = []struct {
	Slug      string
	Published string
	File      string
}{
	{Slug: "upmath", Published: "2016-04-02", File: "content/upmath.md"},
	{Slug: "implementing_smith_waterman_on_CUDA_part_1", Published: "2016-07-19", File: "content/smith_waterman_cuda_1.md"},
	{Slug: "about", File: "content/about.md"},
}

// Builtin returns the articles embedded in the binary. Titles are left empty
// and derived from the first H1 when the article enters a registry.
func Builtin() []Article {
	out := make([]Article, 0, len(builtinPosts))
	for _, p := range builtinPosts {
		out = append(out, Article{
			Slug:      p.Slug,
			Published: p.Published,
			Markdown:  mustRead(p.File),
		})
	}
	return out
}

// mustRead reads an embedded file. The files are compiled into the binary,
// so a read failure is a programming error.
func mustRead(name string) string {
	data, err := contentFS.ReadFile(name)
	if err != nil {
		panic("articles: missing embedded file " + name)
	}
	return string(data)
}
