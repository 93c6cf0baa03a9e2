// Package tsconfig adds module path aliases to a TypeScript project config.
package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/literal"
	"cuelang.org/go/cue/parser"
	"cuelang.org/go/cue/token"
)

// AddPath sets compilerOptions.paths[key] = value in the tsconfig document
// data. Comments and trailing commas are accepted on input. Missing or null
// compilerOptions and paths objects are created after their existing
// siblings, and the new key is appended after existing aliases. When key is
// already present data is returned as is and added is false.
func AddPath(data []byte, key string, value []string) (out []byte, added bool, err error) {
	file, root, err := parse(data)
	if err != nil {
		return nil, false, err
	}

	options, err := object(root, "compilerOptions")
	if err != nil {
		return nil, false, err
	}
	aliases, err := object(options, "paths")
	if err != nil {
		return nil, false, err
	}
	if lookup(*aliases, key) != nil {
		return data, false, nil
	}

	targets := make([]ast.Expr, len(value))
	for i, v := range value {
		targets[i] = ast.NewString(v)
	}
	*aliases = append(*aliases, &ast.Field{Label: ast.NewString(key), Value: ast.NewList(targets...)})

	if err := validate(file); err != nil {
		return nil, false, fmt.Errorf("setting %s: %w", key, err)
	}
	out, err = encode(root)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// Normalize re-encodes data as indented JSON without comments.
func Normalize(data []byte) ([]byte, error) {
	_, root, err := parse(data)
	if err != nil {
		return nil, err
	}
	return encode(root)
}

// parse reads data and returns the element list of its top-level object.
func parse(data []byte) (*ast.File, *[]ast.Decl, error) {
	file, err := parser.ParseFile("tsconfig.json", stripBlockComments(data))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing tsconfig: %w", err)
	}
	if err := validate(file); err != nil {
		return nil, nil, fmt.Errorf("parsing tsconfig: %w", err)
	}

	if len(file.Decls) == 1 {
		if embed, ok := file.Decls[0].(*ast.EmbedDecl); ok {
			st, ok := embed.Expr.(*ast.StructLit)
			if !ok {
				return nil, nil, fmt.Errorf("parsing tsconfig: top level is not an object")
			}
			return file, &st.Elts, nil
		}
	}
	return file, &file.Decls, nil
}

// validate evaluates file so conflicting duplicate keys and non-object
// documents are reported before anything is written.
func validate(file *ast.File) error {
	v := cuecontext.New().BuildFile(file)
	if err := v.Err(); err != nil {
		return err
	}
	if v.Kind() != cue.StructKind {
		return fmt.Errorf("top level is %s, not an object", v.Kind())
	}
	return nil
}

// object returns the element list of the object stored under name in decls.
// A missing field is appended and a null one is replaced by an empty object.
func object(decls *[]ast.Decl, name string) (*[]ast.Decl, error) {
	field := lookup(*decls, name)
	if field == nil {
		st := &ast.StructLit{}
		*decls = append(*decls, &ast.Field{Label: ast.NewString(name), Value: st})
		return &st.Elts, nil
	}

	switch v := field.Value.(type) {
	case *ast.StructLit:
		return &v.Elts, nil
	case *ast.BasicLit:
		if v.Kind == token.NULL {
			st := &ast.StructLit{}
			field.Value = st
			return &st.Elts, nil
		}
	}
	return nil, fmt.Errorf("%s is not an object", name)
}

func lookup(decls []ast.Decl, name string) *ast.Field {
	for _, d := range decls {
		f, ok := d.(*ast.Field)
		if !ok {
			continue
		}
		if label, _, err := ast.LabelName(f.Label); err == nil && label == name {
			return f
		}
	}
	return nil
}

// encode writes the object as indented JSON in source order.
func encode(root *[]ast.Decl) ([]byte, error) {
	var raw bytes.Buffer
	if err := encodeExpr(&raw, &ast.StructLit{Elts: *root}); err != nil {
		return nil, fmt.Errorf("encoding tsconfig: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indenting tsconfig: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeExpr(buf *bytes.Buffer, expr ast.Expr) error {
	switch x := expr.(type) {
	case *ast.StructLit:
		buf.WriteByte('{')
		n := 0
		for _, d := range x.Elts {
			f, ok := d.(*ast.Field)
			if !ok {
				return fmt.Errorf("unsupported declaration %T", d)
			}
			name, _, err := ast.LabelName(f.Label)
			if err != nil {
				return err
			}
			if n > 0 {
				buf.WriteByte(',')
			}
			n++
			writeString(buf, name)
			buf.WriteByte(':')
			if err := encodeExpr(buf, f.Value); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		buf.WriteByte('}')
	case *ast.ListLit:
		buf.WriteByte('[')
		for i, e := range x.Elts {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeExpr(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *ast.BasicLit:
		if x.Kind != token.STRING {
			buf.WriteString(x.Value)
			return nil
		}
		s, err := literal.Unquote(x.Value)
		if err != nil {
			return err
		}
		writeString(buf, s)
	case *ast.UnaryExpr:
		if x.Op != token.SUB {
			return fmt.Errorf("unsupported operator %s", x.Op)
		}
		buf.WriteByte('-')
		return encodeExpr(buf, x.X)
	default:
		return fmt.Errorf("unsupported value %T", expr)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
}

// stripBlockComments blanks /* */ comments outside string literals.
// Line comments are valid CUE and pass through.
func stripBlockComments(data []byte) []byte {
	if !bytes.Contains(data, []byte("/*")) {
		return data
	}

	out := make([]byte, 0, len(data))
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case inString:
			out = append(out, c)
			if c == '\\' && i+1 < len(data) {
				i++
				out = append(out, data[i])
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for ; i < len(data) && data[i] != '\n'; i++ {
				out = append(out, data[i])
			}
			if i < len(data) {
				out = append(out, '\n')
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			end := bytes.Index(data[i+2:], []byte("*/"))
			if end < 0 {
				return append(out, data[i:]...)
			}
			// Newlines are kept so CUE still sees field separators.
			for _, b := range data[i : i+2+end+2] {
				if b == '\n' {
					out = append(out, '\n')
				}
			}
			out = append(out, ' ')
			i += 2 + end + 1
		default:
			out = append(out, c)
		}
	}
	return out
}
