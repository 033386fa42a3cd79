// Package manifest writes the machine-readable artifact inventory included
// in every incident archive. Output is canonical YAML with sorted mapping
// keys, so packaging the same report tree twice yields byte-identical
// manifests.
package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Artifact is one collected file, recorded by the stage that pulled it.
type Artifact struct {
	Category string
	Source   string
	Dest     string
}

// Marshal returns canonical YAML bytes for an incident manifest. The
// timestamp is deliberately absent; it lives in metadata.txt only.
func Marshal(device string, artifacts []Artifact) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, scalarNode("device"), scalarFrom(device))
	top.Content = append(top.Content, scalarNode("artifacts"), artifactsNode(artifacts))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

// Write writes canonical YAML content to path, creating parent directories.
func Write(path, device string, artifacts []Artifact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := Marshal(device, artifacts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func artifactsNode(artifacts []Artifact) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, a := range artifacts {
		n.Content = append(n.Content, canonicalMapNode(map[string]any{
			"category": a.Category,
			"source":   a.Source,
			"dest":     a.Dest,
		}))
	}
	return n
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

func canonicalMapNode(m map[string]any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if len(m) == 0 {
		return n
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Content = append(n.Content, scalarNode(k), scalarFrom(m[k]))
	}
	return n
}
