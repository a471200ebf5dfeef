package markdown_test

import (
	"strings"
	"testing"

	"weldtrack/internal/platform/markdown"
)

func TestRenderFrontmatter(t *testing.T) {
	t.Parallel()
	meta := map[string]any{"id": "note-1", "source": "reading"}
	rendered, err := markdown.RenderFrontmatter(meta, "Ran three beads.\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\n") {
		t.Fatalf("document should open with a separator: %q", rendered)
	}
	if !strings.Contains(rendered, "id: note-1\n") || !strings.Contains(rendered, "source: reading\n") {
		t.Fatalf("metadata missing: %q", rendered)
	}
	if !strings.HasSuffix(rendered, "---\n\nRan three beads.\n") {
		t.Fatalf("body should follow the closing separator: %q", rendered)
	}
}

func TestRenderFrontmatterKeepsLeadingNewline(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(map[string]any{"id": "x"}, "\nbody")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(rendered, "---\n\nbody") {
		t.Fatalf("body with leading newline should not gain another: %q", rendered)
	}
}
