package output

import (
	"fmt"
	"io"

	"github.com/pranshuparmar/pstree/internal/tree"
	"github.com/pranshuparmar/pstree/pkg/model"
)

// SanitizeRecords escapes record names in place before the tree is built,
// so the renderer measures exactly the text that reaches the terminal.
func SanitizeRecords(records []model.Record) {
	for i := range records {
		records[i].Name = SanitizeName(records[i].Name)
	}
}

// PrintTree writes a rendered tree preceded by two blank lines
func PrintTree(w io.Writer, t *tree.Tree, opts tree.RenderOptions) error {
	if _, err := io.WriteString(w, "\n\n"+tree.Render(t, opts)); err != nil {
		return fmt.Errorf("couldn't write tree: %w", err)
	}
	return nil
}
