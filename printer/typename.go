package printer

import (
	"fmt"
	"strings"

	"github.com/Hoshoyo/moparser/ast"
)

// printTypeName renders a specifier-qualifier-list followed by an
// optional abstract declarator.
func printTypeName(b *strings.Builder, tn *ast.TypeName) error {
	if tn == nil {
		return fmt.Errorf("printer: nil type name")
	}
	if err := printTypeInfo(b, tn.SpecifierQualifier); err != nil {
		return err
	}
	if tn.AbstractDeclarator != nil {
		b.WriteByte(' ')
		printAbstractDeclarator(b, tn.AbstractDeclarator)
	}
	return nil
}

// primitiveOrder is the canonical print order for primitive keywords,
// independent of the order they appeared in the source.
var primitiveOrder = []struct {
	index int
	word  string
}{
	{ast.PrimUnsigned, "unsigned"},
	{ast.PrimSigned, "signed"},
	{ast.PrimLong, "long"},
	{ast.PrimShort, "short"},
	{ast.PrimInt, "int"},
	{ast.PrimChar, "char"},
	{ast.PrimFloat, "float"},
	{ast.PrimDouble, "double"},
}

func printTypeInfo(b *strings.Builder, ti *ast.TypeInfo) error {
	if ti == nil {
		return fmt.Errorf("printer: nil type info")
	}
	var words []string
	if ti.Qualifiers&ast.QualifierConst != 0 {
		words = append(words, "const")
	}
	if ti.Qualifiers&ast.QualifierVolatile != 0 {
		words = append(words, "volatile")
	}
	if ti.StorageClass&ast.StorageTypedef != 0 {
		words = append(words, "typedef")
	}
	if ti.StorageClass&ast.StorageExtern != 0 {
		words = append(words, "extern")
	}
	if ti.StorageClass&ast.StorageStatic != 0 {
		words = append(words, "static")
	}
	if ti.StorageClass&ast.StorageAuto != 0 {
		words = append(words, "auto")
	}
	if ti.StorageClass&ast.StorageRegister != 0 {
		words = append(words, "register")
	}

	switch ti.Kind {
	case ast.TypeVoid:
		words = append(words, "void")
	case ast.TypePrimitive:
		for _, p := range primitiveOrder {
			for i := 0; i < ti.Primitive[p.index]; i++ {
				words = append(words, p.word)
			}
		}
	case ast.TypeAlias:
		words = append(words, ti.Alias)
	case ast.TypeStruct, ast.TypeUnion, ast.TypeEnum:
		var buf strings.Builder
		switch ti.Kind {
		case ast.TypeStruct:
			buf.WriteString("struct")
			writeTagAndBody(&buf, ti.StructName, ti.StructBody)
		case ast.TypeUnion:
			buf.WriteString("union")
			writeTagAndBody(&buf, ti.StructName, ti.StructBody)
		case ast.TypeEnum:
			buf.WriteString("enum")
			if ti.EnumName != "" {
				buf.WriteByte(' ')
				buf.WriteString(ti.EnumName)
			}
			if ti.EnumBody != nil {
				buf.WriteString(" { ")
				for i, e := range ti.EnumBody.Items {
					if i > 0 {
						buf.WriteString(", ")
					}
					buf.WriteString(e.Name.String())
					if e.Value != nil {
						buf.WriteString(" = ")
						printNode(&buf, e.Value)
					}
				}
				buf.WriteString(" }")
			}
		}
		words = append(words, buf.String())
	default:
		return fmt.Errorf("printer: unsupported type kind %v", ti.Kind)
	}

	b.WriteString(strings.Join(words, " "))
	return nil
}

func writeTagAndBody(buf *strings.Builder, name string, body *ast.StructDeclarationList) {
	if name != "" {
		buf.WriteByte(' ')
		buf.WriteString(name)
	}
	if body == nil {
		return
	}
	buf.WriteString(" { ")
	for _, decl := range body.Items {
		var inner strings.Builder
		printTypeInfo(&inner, decl.SpecifierQualifier)
		buf.WriteString(inner.String())
		buf.WriteByte(' ')
		for i, item := range decl.Declarators.Items {
			if i > 0 {
				buf.WriteString(", ")
			}
			switch sd := item.(type) {
			case *ast.StructDeclarator:
				printAbstractDeclarator(buf, sd.Declarator)
			case *ast.StructDeclaratorBitfield:
				if sd.Declarator != nil {
					printAbstractDeclarator(buf, sd.Declarator)
				}
				buf.WriteString(" : ")
				printNode(buf, sd.Width)
			}
		}
		buf.WriteString("; ")
	}
	buf.WriteString("}")
}

// printAbstractDeclarator renders a pointer chain followed by a direct
// abstract declarator.
func printAbstractDeclarator(b *strings.Builder, d *ast.AbstractDeclarator) {
	if d == nil {
		return
	}
	printPointer(b, d.Pointer)
	printDirectAbstractDeclarator(b, d.Direct)
}

func printPointer(b *strings.Builder, p *ast.Pointer) {
	for p != nil {
		b.WriteByte('*')
		if p.Qualifiers&ast.QualifierConst != 0 {
			b.WriteString("const")
		}
		if p.Qualifiers&ast.QualifierVolatile != 0 {
			b.WriteString("volatile")
		}
		p = p.Next
	}
}

func printDirectAbstractDeclarator(b *strings.Builder, d *ast.DirectAbstractDeclarator) {
	if d == nil {
		return
	}
	switch d.Kind {
	case ast.DirectNone:
		if d.Group != nil {
			b.WriteByte('(')
			printAbstractDeclarator(b, d.Group)
			b.WriteByte(')')
		}
	case ast.DirectName:
		b.WriteString(d.Name.String())
	case ast.DirectArray:
		printDirectAbstractDeclarator(b, d.Left)
		b.WriteByte('[')
		if d.Size != nil {
			printNode(b, d.Size)
		}
		b.WriteByte(']')
	case ast.DirectFunction:
		printDirectAbstractDeclarator(b, d.Left)
		b.WriteByte('(')
		if d.Params != nil {
			for i, param := range d.Params.Params {
				if i > 0 {
					b.WriteString(", ")
				}
				printTypeInfo(b, param.Specifiers)
				if param.Declarator != nil {
					b.WriteByte(' ')
					printAbstractDeclarator(b, param.Declarator)
				}
			}
			if d.Params.IsVararg {
				if len(d.Params.Params) > 0 {
					b.WriteString(", ")
				}
				b.WriteString("...")
			}
		}
		b.WriteByte(')')
	}
}
