package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"gear-catalog-service/internal/domain"
)

var fence = []byte("---")

// splitFrontmatter separates a document into its YAML metadata block and
// body text. The file must begin with a `---` fence, followed by YAML,
// followed by a closing `---`; everything after the closing fence is the
// body.
func splitFrontmatter(raw []byte) (domain.Frontmatter, string, error) {
	var meta domain.Frontmatter

	trimmed := bytes.TrimLeft(raw, "\ufeff\n\r")
	if !bytes.HasPrefix(trimmed, fence) {
		return meta, "", fmt.Errorf("missing frontmatter fence")
	}

	rest := trimmed[len(fence):]
	end := bytes.Index(rest, append([]byte("\n"), fence...))
	if end < 0 {
		return meta, "", fmt.Errorf("unterminated frontmatter block")
	}

	block := rest[:end]
	body := rest[end+1+len(fence):]

	if err := yaml.Unmarshal(block, &meta); err != nil {
		return meta, "", fmt.Errorf("decoding frontmatter: %w", err)
	}
	if meta.Title == "" {
		return meta, "", fmt.Errorf("frontmatter missing required title")
	}
	if meta.Date == "" {
		return meta, "", fmt.Errorf("frontmatter missing required date")
	}

	return meta, string(bytes.TrimLeft(body, "\n\r")), nil
}
