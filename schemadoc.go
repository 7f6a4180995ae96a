package dhi

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseSchemaDoc reads a schema document in YAML (or JSON, which YAML
// subsumes) and returns the fields in document order. Order matters: it is
// the short-circuit order of the compiled schema, which is why this goes
// through yaml.Node instead of a Go map.
//
// Each entry is a field name mapped to a rule sequence, or a bare rule name
// for parameterless rules:
//
//	name: [string, 2, 100]
//	age: [int_gt, 18]
//	email: email
//
// Only document structure is checked here; rule names are resolved later by
// Compile, in lenient or strict mode.
func ParseSchemaDoc(data []byte) ([]Field, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "invalid schema document", Cause: err, Offset: -1}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, singleIssue(CodeParseError, "empty schema document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, singleIssue(CodeInvalidType, "schema document must be a mapping of field name to rule")
	}

	fields := make([]Field, 0, len(root.Content)/2)
	var iss Issues
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		name := keyNode.Value

		switch valNode.Kind {
		case yaml.ScalarNode:
			fields = append(fields, Field{Name: name, Rule: valNode.Value})
		case yaml.SequenceNode:
			if len(valNode.Content) == 0 {
				iss = AppendIssues(iss, Issue{
					Path:    "/" + name,
					Code:    CodeMissingParam,
					Message: "rule sequence must start with a rule name",
					Offset:  -1,
				})
				continue
			}
			f := Field{Name: name, Rule: valNode.Content[0].Value}
			for _, pn := range valNode.Content[1:] {
				p, err := scalarValue(pn)
				if err != nil {
					iss = AppendIssues(iss, Issue{
						Path:    "/" + name,
						Code:    CodeInvalidType,
						Message: fmt.Sprintf("rule parameter: %v", err),
						Offset:  -1,
					})
					continue
				}
				f.Params = append(f.Params, p)
			}
			fields = append(fields, f)
		default:
			iss = AppendIssues(iss, Issue{
				Path:    "/" + name,
				Code:    CodeInvalidType,
				Message: "field rule must be a name or a [name, params...] sequence",
				Offset:  -1,
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return fields, nil
}

// CompileDoc parses and compiles a schema document in one step.
func CompileDoc(data []byte, opts ...CompileOption) (*Schema, error) {
	fields, err := ParseSchemaDoc(data)
	if err != nil {
		return nil, err
	}
	return Compile(fields, opts...)
}

func scalarValue(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("expected a scalar, got %v", n.Kind)
	}
	switch n.Tag {
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return n.Value, nil
	}
}
