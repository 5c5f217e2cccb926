package output

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/pranshuparmar/pstree/internal/tree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON encodes the tree as nested objects starting at the root
func ToJSON(t *tree.Tree) (string, error) {
	b, err := json.MarshalIndent(t.Root, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
