// Package appmodule registers a generated module in the project's root
// NestJS module file by textual patching.
package appmodule

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Status reports what Patch did to the registration array.
type Status string

const (
	// StatusAdded means the class was appended to an existing imports array.
	StatusAdded Status = "added"

	// StatusInjected means a new imports key was injected into the decorator object.
	StatusInjected Status = "injected"

	// StatusPresent means the class was already listed.
	StatusPresent Status = "present"

	// StatusNoDecorator means no @Module( call was found.
	StatusNoDecorator Status = "no-decorator"

	// StatusNoObject means @Module( was found without an object literal.
	StatusNoObject Status = "no-object"

	// StatusUnbalanced means the imports array never closes.
	StatusUnbalanced Status = "unbalanced"

	// StatusNotFound means no app.module.ts exists below the search root.
	StatusNotFound Status = "not-found"

	// StatusFailed means the file could not be read or written.
	StatusFailed Status = "failed"
)

// Registered reports whether the class ends up listed in the imports array.
func (s Status) Registered() bool {
	return s == StatusAdded || s == StatusInjected || s == StatusPresent
}

const (
	decorator    = "@Module("
	injectIndent = "\n  "
)

var (
	importStmt    = regexp.MustCompile(`^\s*import\s`)
	importsKey    = regexp.MustCompile(`imports\s*:\s*\[`)
	namedImports  = regexp.MustCompile(`(?m)^\s*import\s+(?:type\s+)?(?:[\w$]+\s*,\s*)?\{([^}]*)\}\s*from\s`)
	defaultImport = regexp.MustCompile(`(?m)^\s*import\s+([\w$]+)\s*(?:,|from\s)`)
)

// Outcome is the result of Patch.
type Outcome struct {
	// Content is the patched text.
	Content string

	// Status describes the registration step.
	Status Status

	// ImportAdded is true when the import line was inserted.
	ImportAdded bool
}

// ImportLine returns the import statement for class from path.
func ImportLine(class, path string) string {
	return fmt.Sprintf("import { %s } from '%s';", class, path)
}

// Patch adds importLine to content and registers class in the @Module
// imports array. It never fails; Outcome.Status describes anything it
// could not do. Patching an already patched content returns it unchanged,
// and content that already lists class is left alone even when it imports
// the class from elsewhere.
func Patch(content, importLine, class string) Outcome {
	if _, status := register(content, class); status == StatusPresent {
		return Outcome{Content: content, Status: StatusPresent}
	}

	out := Outcome{Content: content}
	if !strings.Contains(content, importLine) && !binds(content, class) {
		out.Content = insertImport(content, importLine)
		out.ImportAdded = true
	}

	out.Content, out.Status = register(out.Content, class)
	return out
}

// binds reports whether an import statement in content already binds name.
func binds(content, name string) bool {
	for _, m := range defaultImport.FindAllStringSubmatch(content, -1) {
		if m[1] == name {
			return true
		}
	}
	for _, m := range namedImports.FindAllStringSubmatch(content, -1) {
		for _, spec := range strings.Split(m[1], ",") {
			// "A", "type A" and "A as B" bind the last word.
			if f := strings.Fields(spec); len(f) > 0 && f[len(f)-1] == name {
				return true
			}
		}
	}
	return false
}

// insertImport places line after the last import statement, or first.
func insertImport(content, line string) string {
	lines := strings.Split(content, "\n")

	last := -1
	for i, l := range lines {
		if importStmt.MatchString(l) {
			last = i
		}
	}

	// Keep CRLF files consistent.
	if last >= 0 && strings.HasSuffix(lines[last], "\r") {
		line += "\r"
	} else if last < 0 && len(lines) > 0 && strings.HasSuffix(lines[0], "\r") {
		line += "\r"
	}

	patched := make([]string, 0, len(lines)+1)
	patched = append(patched, lines[:last+1]...)
	patched = append(patched, line)
	patched = append(patched, lines[last+1:]...)
	return strings.Join(patched, "\n")
}

func register(content, class string) (string, Status) {
	deco := strings.Index(content, decorator)
	if deco < 0 {
		return content, StatusNoDecorator
	}

	paren := deco + len(decorator) - 1
	extent, _ := matchClose(content, paren, '(', ')')
	body := content[paren:extent]

	if loc := importsKey.FindStringIndex(body); loc != nil {
		return appendToArray(content, paren+loc[1]-1, class)
	}

	brace := strings.IndexByte(body, '{')
	if brace < 0 {
		return content, StatusNoObject
	}
	at := paren + brace + 1
	return content[:at] + injectIndent + "imports: [" + class + "]," + content[at:], StatusInjected
}

// appendToArray inserts class before the bracket closing the array opened at
// content[open].
func appendToArray(content string, open int, class string) (string, Status) {
	end, ok := matchClose(content, open, '[', ']')
	if !ok {
		return content, StatusUnbalanced
	}

	inner := content[open+1 : end]
	if slices.Contains(identifiers(inner), class) {
		return content, StatusPresent
	}

	// Insert after the last element so trailing comments stay behind it.
	if last := lastCode(inner); last >= 0 {
		at := open + 1 + last + 1
		sep := ", "
		if inner[last] == ',' {
			sep = " "
		}
		return content[:at] + sep + class + content[at:], StatusAdded
	}

	at := open + 1
	suffix := ""
	if c := content[at]; c != ']' && c != ' ' && c != '\t' && c != '\r' && c != '\n' {
		suffix = " "
	}
	return content[:at] + class + suffix + content[at:], StatusAdded
}
