package doctree

import "bytes"

// StripFrontmatter removes a leading YAML frontmatter block from a raw
// document. Resolution and indexing only operate on the Markdown body;
// frontmatter fields are a concern of the surrounding pipeline.
func StripFrontmatter(content []byte) []byte {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return content
	}
	rest := content[bytes.IndexByte(content, '\n')+1:]
	for _, delim := range []string{"---\n", "---\r\n"} {
		if bytes.HasPrefix(rest, []byte(delim)) {
			return rest[len(delim):]
		}
	}
	for _, delim := range []string{"\n---\n", "\n---\r\n", "\r\n---\r\n"} {
		if i := bytes.Index(rest, []byte(delim)); i >= 0 {
			return rest[i+len(delim):]
		}
	}
	if bytes.Equal(bytes.TrimRight(rest, "\r\n"), []byte("---")) {
		return nil
	}
	return content
}
