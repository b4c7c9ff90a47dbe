package sqlquery

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition is a declarative description of a statement, e.g.:
//
//	kind: select
//	table: users
//	fields: [id, name]
//	where:
//	  - id > 5
//	  - clause: vip = 1
//	    connector: OR
//	order: [name DESC]
//	limit: {count: 10, offset: 20}
//
// Fields are a list of scalars, for positional expressions, and single-key
// mappings, for column / value pairs. Where, group and order entries are
// either a scalar or a mapping with the fields of Condition, Group and Order.
type Definition struct {
	Kind     string      `yaml:"kind"`
	Database string      `yaml:"database"`
	Table    string      `yaml:"table"`
	Options  []string    `yaml:"options"`
	Fields   []Field     `yaml:"fields"`
	Joins    []Join      `yaml:"joins"`
	Where    []Condition `yaml:"where"`
	Group    []Group     `yaml:"group"`
	Order    []Order     `yaml:"order"`
	Limit    *Limit      `yaml:"limit"`
}

// LoadDefinition reads a YAML definition from the file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read definition")
	}
	return ParseDefinition(data)
}

// ParseDefinition decodes a YAML definition. The kind defaults to SELECT.
func ParseDefinition(data []byte) (*Definition, error) {
	d := &Definition{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, errors.Wrap(err, "decode definition")
	}
	if strings.TrimSpace(d.Kind) == "" {
		d.Kind = string(KindSelect)
	}
	return d, nil
}

// Statement builds a new Statement by replaying the definition
// through the statement mutators.
func (d *Definition) Statement() *Statement {
	s := New(strings.TrimSpace(d.Kind))
	s.SetDatabase(d.Database)
	s.SetTable(d.Table)
	if len(d.Options) > 0 {
		s.SetSelectOptions(d.Options...)
	}
	s.SetFields(d.Fields...)
	for _, j := range d.Joins {
		s.SetJoin(j)
	}
	for _, c := range d.Where {
		s.SetWhereCondition(c)
	}
	for _, g := range d.Group {
		s.SetGroupBy(g)
	}
	for _, o := range d.Order {
		s.SetOrderBy(o)
	}
	if d.Limit != nil {
		s.SetLimit(d.Limit.Count, d.Limit.Offset)
	}
	return s
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*f = Expr(node.Value)
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return errors.Errorf("line %d: field mapping must have exactly one key", node.Line)
		}
		key, value := node.Content[0], node.Content[1]
		if value.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: value of field %q must be a scalar", value.Line, key.Value)
		}
		*f = Assign(key.Value, scalarValue(value))
		return nil
	}
	return errors.Errorf("line %d: field must be a scalar or a single-key mapping", node.Line)
}

// scalarValue keeps the YAML text of the scalar, so that `age: 30` renders
// 30 and `name: "'Ann'"` renders 'Ann'. A null becomes a nil value.
func scalarValue(node *yaml.Node) any {
	if node.Tag == "!!null" {
		return nil
	}
	return node.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = Condition{Clause: strings.TrimSpace(node.Value)}
		return nil
	}
	type plain Condition
	var p plain
	if err := node.Decode(&p); err != nil {
		return errors.Wrapf(err, "line %d: where", node.Line)
	}
	*c = Condition(p)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Group) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*g = Group{Column: strings.TrimSpace(node.Value)}
		return nil
	}
	type plain Group
	var p plain
	if err := node.Decode(&p); err != nil {
		return errors.Wrapf(err, "line %d: group", node.Line)
	}
	*g = Group(p)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A scalar may carry the
// direction after the column, e.g. "created_at DESC".
func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*o = parseOrder(node.Value)
		return nil
	}
	type plain Order
	var p plain
	if err := node.Decode(&p); err != nil {
		return errors.Wrapf(err, "line %d: order", node.Line)
	}
	*o = Order(p)
	return nil
}

func parseOrder(s string) Order {
	s = strings.TrimSpace(s)
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return Order{Column: s}
	}
	switch dir := strings.ToUpper(s[i+1:]); dir {
	case OrderAsc, OrderDesc:
		return Order{Column: strings.TrimSpace(s[:i]), Direction: dir}
	}
	return Order{Column: s}
}
