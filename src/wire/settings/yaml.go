package settings

import (
	"reflect"

	"gopkg.in/yaml.v3"

	"lspwire/src/internal/errors"
)

const mergeTag = "!!merge"

// node converts a YAML node tree, resolving scalars by tag and following
// aliases to their anchors.
func (n *normalizer) node(node *yaml.Node, path string) (any, error) {
	if node == nil {
		return nil, nil
	}
	key := visitKey{reflect.Pointer, reflect.ValueOf(node).Pointer()}
	if err := n.enter(key, path); err != nil {
		return nil, err
	}
	defer n.leave(key)

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return n.node(node.Content[0], path)
	case yaml.AliasNode:
		return n.node(node.Alias, path)
	case yaml.SequenceNode:
		out := make([]any, len(node.Content))
		for i, item := range node.Content {
			v, err := n.node(item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		return n.mappingNode(node, path)
	case yaml.ScalarNode:
		return n.scalarNode(node, path)
	}
	return nil, errors.NewUnsupportedConfigValueError(path, node, "unknown YAML node kind")
}

func (n *normalizer) mappingNode(node *yaml.Node, path string) (any, error) {
	out := make(map[string]any, len(node.Content)/2)
	var merged []map[string]any

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == mergeTag {
			maps, err := n.mergeSources(v, path)
			if err != nil {
				return nil, err
			}
			merged = append(merged, maps...)
			continue
		}

		name, err := nodeKey(k, path)
		if err != nil {
			return nil, err
		}
		nv, err := n.node(v, childPath(path, name))
		if err != nil {
			return nil, err
		}
		out[name] = nv
	}

	// explicit keys win over merged ones, earlier merge sources over later
	for _, m := range merged {
		for k, v := range m {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
	return out, nil
}

func (n *normalizer) mergeSources(v *yaml.Node, path string) ([]map[string]any, error) {
	resolved, err := n.node(v, path)
	if err != nil {
		return nil, err
	}
	switch t := resolved.(type) {
	case map[string]any:
		return []map[string]any{t}, nil
	case []any:
		maps := make([]map[string]any, 0, len(t))
		for _, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, errors.NewUnsupportedConfigValueError(path, item, "merge source must be a mapping")
			}
			maps = append(maps, m)
		}
		return maps, nil
	}
	return nil, errors.NewUnsupportedConfigValueError(path, resolved, "merge source must be a mapping")
}

func nodeKey(k *yaml.Node, path string) (string, error) {
	for k.Kind == yaml.AliasNode && k.Alias != nil {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", errors.NewUnsupportedConfigValueError(path, k, "mapping keys must be scalars")
	}
	return keyText(k.Value, path)
}

func (n *normalizer) scalarNode(node *yaml.Node, path string) (any, error) {
	if node.ShortTag() == "!!str" {
		return n.value(node.Value, path)
	}
	var decoded any
	if err := node.Decode(&decoded); err != nil {
		return nil, errors.NewUnsupportedConfigValueError(path, node.Value, err.Error())
	}
	return n.value(decoded, path)
}
