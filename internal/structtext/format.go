package structtext

import "strings"

// Field is a single assignment in struct text. A field with Fields is
// written as a nested struct; otherwise Value is written verbatim, inside
// quotes when Quote is set.
type Field struct {
	Name   string
	Value  string
	Quote  bool
	Fields []Field
}

// Assign returns a bare-valued field.
func Assign(name, value string) Field {
	return Field{Name: name, Value: value}
}

// Quoted returns a quoted-valued field.
func Quoted(name, value string) Field {
	return Field{Name: name, Value: value, Quote: true}
}

// Struct returns a nested struct field.
func Struct(name string, fields ...Field) Field {
	return Field{Name: name, Fields: append([]Field{}, fields...)}
}

// String formats the field as multi-line struct text.
func (f Field) String() string {
	var b strings.Builder
	f.write(&b, 0)
	return b.String()
}

// Format formats the fields one after another, each on its own lines.
func Format(fields ...Field) string {
	var b strings.Builder
	for _, f := range fields {
		f.write(&b, 0)
		b.WriteByte('\n')
	}
	return b.String()
}

func (f Field) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("\t", depth)
	b.WriteString(indent)
	b.WriteString(f.Name)
	b.WriteString(" = ")
	if f.Fields == nil {
		if f.Quote {
			b.WriteByte('"')
			b.WriteString(f.Value)
			b.WriteByte('"')
		} else {
			b.WriteString(f.Value)
		}
		b.WriteByte(';')
		return
	}
	b.WriteString("{\n")
	for _, sub := range f.Fields {
		sub.write(b, depth+1)
		b.WriteByte('\n')
	}
	b.WriteString(indent)
	b.WriteString("};")
}
