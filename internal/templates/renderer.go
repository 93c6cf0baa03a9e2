package templates

import "strings"

// Placeholder tokens substituted in every rendered file.
const (
	TokenModuleName           = "$ModuleName$"
	TokenModuleNameKebab      = "$ModuleNameKebab$"
	TokenModuleNameCamel      = "$ModuleNameCamel$"
	TokenModuleNameSnakeUpper = "$ModuleNameSnakeUpper$"
	TokenEntityName           = "$EntityName$"
	TokenEntityNameKebab      = "$EntityNameKebab$"
	TokenBaseDir              = "$BaseDir$"
)

// Replacements maps placeholder tokens to literal values, preserving the
// order in which tokens were added. The zero value is ready to use.
type Replacements struct {
	keys   []string
	values map[string]string
}

// Set adds or updates a token. Updating keeps the token's original position.
func (r *Replacements) Set(token, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[token]; !ok {
		r.keys = append(r.keys, token)
	}
	r.values[token] = value
}

// Get returns the value of token and whether it is set.
func (r Replacements) Get(token string) (string, bool) {
	v, ok := r.values[token]
	return v, ok
}

// Keys returns the tokens in insertion order.
func (r Replacements) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of tokens.
func (r Replacements) Len() int {
	return len(r.keys)
}

// With returns a copy of r with token set to value. r is not modified.
func (r Replacements) With(token, value string) Replacements {
	out := Replacements{
		keys:   append([]string(nil), r.keys...),
		values: make(map[string]string, len(r.values)+1),
	}
	for k, v := range r.values {
		out.values[k] = v
	}
	out.Set(token, value)
	return out
}

// Render replaces every literal occurrence of each token in text with its
// value. Tokens are applied in insertion order, one pass per token.
func Render(text string, r Replacements) string {
	out := text
	for _, k := range r.keys {
		out = strings.ReplaceAll(out, k, r.values[k])
	}
	return out
}
