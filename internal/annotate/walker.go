package annotate

import (
	"fmt"
	"time"

	"github.com/ahmetb/foodshare/internal/timeutil"
	"gopkg.in/yaml.v3"
)

// AnnotationTarget pairs the YAML key/value nodes of a timestamp field with
// the comment to put on them.
type AnnotationTarget struct {
	KeyNode   *yaml.Node
	ValueNode *yaml.Node
	Comment   string
}

// commentFunc builds the comment for a sequence item given the item mapping
// and the parsed value of its timestamp field.
type commentFunc func(item *yaml.Node, at time.Time) string

// walkSequence visits each mapping item of the sequence stored under seqKey
// in root and collects a target for its timeKey field. Items without the
// field are skipped.
func walkSequence(root *yaml.Node, seqKey, timeKey string, comment commentFunc) ([]AnnotationTarget, error) {
	_, seq := findMappingField(root, seqKey)
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil, nil
	}

	var targets []AnnotationTarget
	for i, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		k, v := findMappingField(item, timeKey)
		if k == nil || v == nil || v.Kind != yaml.ScalarNode {
			continue
		}
		at, err := timeutil.ParseTimestamp(v.Value)
		if err != nil {
			return nil, fmt.Errorf("%s[%d].%s: %w", seqKey, i, timeKey, err)
		}
		targets = append(targets, AnnotationTarget{
			KeyNode:   k,
			ValueNode: v,
			Comment:   comment(item, at),
		})
	}
	return targets, nil
}

// findMappingField locates a key-value pair in a MappingNode by field name.
// Returns (keyNode, valueNode) or (nil, nil) if not found or node is not a mapping.
func findMappingField(mapping *yaml.Node, fieldName string) (*yaml.Node, *yaml.Node) {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil, nil
	}
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == fieldName {
			return mapping.Content[i], mapping.Content[i+1]
		}
	}
	return nil, nil
}

// scalarField returns the value of a scalar field in mapping, or "".
func scalarField(mapping *yaml.Node, fieldName string) string {
	_, v := findMappingField(mapping, fieldName)
	if v == nil || v.Kind != yaml.ScalarNode {
		return ""
	}
	return v.Value
}
