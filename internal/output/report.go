package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format specifies the report format.
type Format string

const (
	// FormatText prints a file tree and a confirmation line.
	FormatText Format = "text"

	// FormatYAML prints the report as YAML.
	FormatYAML Format = "yaml"

	// FormatJSON prints the report as JSON.
	FormatJSON Format = "json"
)

// ValidFormats returns the accepted --output values.
func ValidFormats() []string {
	return []string{"text", "yaml", "json"}
}

// ParseFormat parses a --output value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; valid formats: %s", s, strings.Join(ValidFormats(), ", "))
	}
}

// PatchedFile describes one pre-existing file the run touched or skipped.
type PatchedFile struct {
	Path   string `json:"path" yaml:"path"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Diff   string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Report summarises one generation run.
type Report struct {
	Module       string        `json:"module" yaml:"module"`
	ContainerDir string        `json:"containerDir" yaml:"containerDir"`
	ModuleDir    string        `json:"moduleDir" yaml:"moduleDir"`
	DryRun       bool          `json:"dryRun" yaml:"dryRun"`
	Created      []string      `json:"created" yaml:"created"`
	Patched      []PatchedFile `json:"patched,omitempty" yaml:"patched,omitempty"`
	Warnings     []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// WriteReport writes r to w in the given format.
// useColor only affects the text format.
func WriteReport(w io.Writer, format Format, r Report, useColor bool) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding json report: %w", err)
		}
		return nil
	default:
		return writeText(w, r, useColor)
	}
}

func writeText(w io.Writer, r Report, useColor bool) error {
	var sb strings.Builder

	if len(r.Created) > 0 {
		sb.WriteString(RenderFileTree(r.ModuleDir, r.Created))
		fmt.Fprintf(&sb, "%s  %s (%d entries)\n\n", r.ModuleDir, styleStatus(StatusCreated, useColor), len(r.Created))
	}

	for _, p := range r.Patched {
		fmt.Fprintf(&sb, "%s  %s", p.Path, styleStatus(p.Status, useColor))
		if p.Detail != "" {
			fmt.Fprintf(&sb, " (%s)", p.Detail)
		}
		sb.WriteString("\n")
		if p.Diff != "" {
			sb.WriteString(indent(p.Diff, "    "))
		}
	}
	if len(r.Patched) > 0 {
		sb.WriteString("\n")
	}

	if r.DryRun {
		sb.WriteString(FormatCheckmark("Dry run complete, no files were written."))
	} else {
		sb.WriteString(FormatCheckmark("Module generated successfully!"))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func styleStatus(status string, useColor bool) string {
	if !useColor {
		return status
	}
	return StatusStyle(status).Render(status)
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line != "" {
			sb.WriteString(prefix)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
