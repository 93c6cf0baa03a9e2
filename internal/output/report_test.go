package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() Report {
	return Report{
		Module:       "users",
		ContainerDir: "src/modules",
		ModuleDir:    "src/modules/users",
		Created:      []string{"users.module.ts", "presentation/dtos/"},
		Patched: []PatchedFile{
			{Path: "src/app.module.ts", Status: StatusPatched, Detail: "registered UsersModule"},
		},
		Warnings: []string{"template not found: entity.template.ts"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"table", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatText, sampleReport(), false))

	out := buf.String()
	assert.Contains(t, out, "users.module.ts")
	assert.Contains(t, out, "src/modules/users  created (2 entries)")
	assert.Contains(t, out, "src/app.module.ts  patched (registered UsersModule)")
	assert.Contains(t, out, "Module generated successfully!")
}

func TestWriteReport_TextDryRun(t *testing.T) {
	r := sampleReport()
	r.DryRun = true
	r.Patched[0].Diff = "+ import { UsersModule } from './modules/users/users.module';\n"

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatText, r, false))

	out := buf.String()
	assert.Contains(t, out, "    + import { UsersModule }")
	assert.Contains(t, out, "Dry run complete")
	assert.NotContains(t, out, "Module generated successfully!")
}

func TestWriteReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatYAML, sampleReport(), false))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "users", decoded.Module)
	assert.Equal(t, []string{"users.module.ts", "presentation/dtos/"}, decoded.Created)
	assert.Contains(t, buf.String(), "containerDir: src/modules")
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatJSON, sampleReport(), false))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "src/modules/users", decoded["moduleDir"])
	assert.Len(t, decoded["warnings"], 1)
}
