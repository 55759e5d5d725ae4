package models

import (
	"encoding/json"
	"fmt"
)

// PathInfo describes one node of a server's file tree. Directories carry
// their children recursively with no depth limit enforced here; Children
// is nil for leaf files and for nodes the service did not expand. The
// capability flags use camelCase wire names, declared per field below.
type PathInfo struct {
	Path         string     `json:"path"`
	Name         string     `json:"name"`
	IsTextFile   bool       `json:"isTextFile"`
	IsConfigFile bool       `json:"isConfigFile"`
	IsDirectory  bool       `json:"isDirectory"`
	IsLog        bool       `json:"isLog"`
	IsReadable   bool       `json:"isReadable"`
	IsWritable   bool       `json:"isWritable"`
	Size         int64      `json:"size"`
	Children     []PathInfo `json:"children,omitempty"`
}

// DecodePathInfo validates a path payload, recursing into children.
func DecodePathInfo(raw json.RawMessage) (*PathInfo, error) {
	fs, err := newFieldSet("path", raw)
	if err != nil {
		return nil, err
	}
	p := &PathInfo{
		Path:         fs.str("path"),
		Name:         fs.str("name"),
		IsTextFile:   fs.boolean("isTextFile"),
		IsConfigFile: fs.boolean("isConfigFile"),
		IsDirectory:  fs.boolean("isDirectory"),
		IsLog:        fs.boolean("isLog"),
		IsReadable:   fs.boolean("isReadable"),
		IsWritable:   fs.boolean("isWritable"),
		Size:         fs.integer("size"),
	}

	if cv, ok := fs.raw("children"); ok {
		var items []json.RawMessage
		if err := json.Unmarshal(cv, &items); err != nil {
			fs.fail("children", "expected a list or null")
		} else {
			children := make([]PathInfo, 0, len(items))
			for i, item := range items {
				child, cerr := DecodePathInfo(item)
				if cerr != nil {
					fs.mergeNested(fmt.Sprintf("children[%d]", i), cerr)
					continue
				}
				children = append(children, *child)
			}
			p.Children = children
		}
	}

	if err := fs.err(); err != nil {
		return nil, err
	}
	return p, nil
}
