package gen

import "fmt"

// IDShape is the key shape of an entity: either a *SimpleID or a
// *CompositeID.
type IDShape interface {
	// Fields returns the key fields in declaration order.
	Fields() []*Field
	idShape()
}

// SimpleID is a key made of a single field. Its Go type is the field type.
type SimpleID struct {
	Field *Field
}

// CompositeID is a key made of two or more fields. Generated code
// represents it as a comparable struct named Name whose fields mirror
// Members.
type CompositeID struct {
	Name    string
	Members []*Field
}

// Fields implements IDShape.
func (id *SimpleID) Fields() []*Field { return []*Field{id.Field} }

// Fields implements IDShape.
func (id *CompositeID) Fields() []*Field { return id.Members }

func (*SimpleID) idShape()    {}
func (*CompositeID) idShape() {}

// newIDShape resolves the key shape from the fields marked as key fields.
func newIDShape(t *Type) (IDShape, error) {
	var ids []*Field
	for _, f := range t.Fields {
		if f.ID {
			ids = append(ids, f)
		}
	}
	switch len(ids) {
	case 0:
		return nil, NewSchemaError(t.Name, "", "no field is marked as key", nil)
	case 1:
		return &SimpleID{Field: ids[0]}, nil
	}
	for _, f := range ids {
		ok, err := f.Type.Comparable()
		if err != nil {
			return nil, NewSchemaError(t.Name, f.Name, "composite key member", err)
		}
		if !ok {
			return nil, NewSchemaError(t.Name, f.Name, fmt.Sprintf("composite key member of non-comparable type %s", f.Type), nil)
		}
	}
	return &CompositeID{Name: t.Name + "ID", Members: ids}, nil
}

// KeyName returns the name of the generated composite key type, or an
// empty string for a simple key.
func (t Type) KeyName() string {
	if id, ok := t.ID.(*CompositeID); ok {
		return id.Name
	}
	return ""
}
