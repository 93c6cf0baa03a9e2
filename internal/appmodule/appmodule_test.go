package appmodule

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestkit/create-module/internal/output"
)

func TestMain(m *testing.M) {
	output.SetupLogging(output.LogConfig{Writer: io.Discard})
	os.Exit(m.Run())
}

const appModule = `import { Module } from '@nestjs/common';
import { AppController } from './app.controller';

@Module({
  imports: [ConfigModule.forRoot([Bar])],
  controllers: [AppController],
})
export class AppModule {}
`

const usersImport = "import { UsersModule } from './modules/users/users.module';"

func TestPatch(t *testing.T) {
	out := Patch(appModule, usersImport, "UsersModule")

	want := `import { Module } from '@nestjs/common';
import { AppController } from './app.controller';
import { UsersModule } from './modules/users/users.module';

@Module({
  imports: [ConfigModule.forRoot([Bar]), UsersModule],
  controllers: [AppController],
})
export class AppModule {}
`
	assert.Equal(t, want, out.Content)
	assert.Equal(t, StatusAdded, out.Status)
	assert.True(t, out.ImportAdded)
}

func TestPatch_TwiceIsNoOp(t *testing.T) {
	once := Patch(appModule, usersImport, "UsersModule")
	twice := Patch(once.Content, usersImport, "UsersModule")

	assert.Equal(t, once.Content, twice.Content)
	assert.Equal(t, StatusPresent, twice.Status)
	assert.False(t, twice.ImportAdded)
}

func TestPatch_InjectedTwiceIsNoOp(t *testing.T) {
	content := "@Module({\n  providers: [],\n})\nexport class AppModule {}\n"

	once := Patch(content, usersImport, "UsersModule")
	require.Equal(t, StatusInjected, once.Status)
	twice := Patch(once.Content, usersImport, "UsersModule")

	assert.Equal(t, once.Content, twice.Content)
	assert.Equal(t, StatusPresent, twice.Status)
}

func TestPatch_NoDecoratorKeepsImport(t *testing.T) {
	out := Patch("export class AppModule {}\n", usersImport, "UsersModule")

	assert.Equal(t, StatusNoDecorator, out.Status)
	assert.Equal(t, usersImport+"\nexport class AppModule {}\n", out.Content)
	assert.False(t, out.Status.Registered())
}

func TestPatch_RegisteredUnderOtherImport(t *testing.T) {
	content := "import { BazModule } from './other';\n\n@Module({\n  imports: [BazModule],\n})\nexport class AppModule {}\n"

	out := Patch(content, "import { BazModule } from './modules/baz/baz.module';", "BazModule")

	assert.Equal(t, content, out.Content)
	assert.Equal(t, StatusPresent, out.Status)
	assert.False(t, out.ImportAdded)
}

func TestPatch_AlreadyImportedIsNotImportedAgain(t *testing.T) {
	content := "import { Module } from '@nestjs/common';\nimport {\n  BazModule,\n} from './other';\n\n@Module({\n  imports: [],\n})\nexport class AppModule {}\n"

	out := Patch(content, "import { BazModule } from './modules/baz/baz.module';", "BazModule")

	assert.Equal(t, StatusAdded, out.Status)
	assert.False(t, out.ImportAdded)
	assert.NotContains(t, out.Content, "./modules/baz/baz.module")
	assert.Contains(t, out.Content, "imports: [BazModule]")
}

func TestBinds(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"named", "import { A, BazModule } from './x';", true},
		{"aliased", "import { Other as BazModule } from './x';", true},
		{"alias source only", "import { BazModule as Other } from './x';", false},
		{"type import", "import type { BazModule } from './x';", true},
		{"default", "import BazModule from './x';", true},
		{"default and named", "import Def, { BazModule } from './x';", true},
		{"prefix", "import { BazModuleExtra } from './x';", false},
		{"not imported", "const BazModule = 1;", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, binds(tt.content, "BazModule"))
		})
	}
}

func TestRegisterInArray(t *testing.T) {
	tests := []struct {
		name   string
		array  string
		want   string
		status Status
	}{
		{"empty", "[]", "[BazModule]", StatusAdded},
		{"nested brackets", "[FooModule.forRoot([Bar])]", "[FooModule.forRoot([Bar]), BazModule]", StatusAdded},
		{"single", "[A]", "[A, BazModule]", StatusAdded},
		{"padded", "[ A ]", "[ A, BazModule ]", StatusAdded},
		{"trailing comma", "[A, ]", "[A, BazModule ]", StatusAdded},
		{"multiline trailing comma", "[\n    A,\n  ]", "[\n    A, BazModule\n  ]", StatusAdded},
		{"bracket in string", "[Foo.register(']')]", "[Foo.register(']'), BazModule]", StatusAdded},
		{"bracket in comment", "[A /* ] */]", "[A, BazModule /* ] */]", StatusAdded},
		{"class in block comment", "[/* BazModule */]", "[BazModule /* BazModule */]", StatusAdded},
		{"class in line comment", "[\n    A, // BazModule\n  ]", "[\n    A, BazModule // BazModule\n  ]", StatusAdded},
		{"class in string", "[Foo.register('BazModule')]", "[Foo.register('BazModule'), BazModule]", StatusAdded},
		{"member of class", "[BazModule.forRoot()]", "[BazModule.forRoot()]", StatusPresent},
		{"already present", "[A, BazModule]", "[A, BazModule]", StatusPresent},
		{"prefix is not a match", "[BazModuleExtra]", "[BazModuleExtra, BazModule]", StatusAdded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "@Module({\n  imports: " + tt.array + ",\n})\n"

			got, status := register(content, "BazModule")

			assert.Equal(t, tt.status, status)
			assert.Equal(t, "@Module({\n  imports: "+tt.want+",\n})\n", got)
		})
	}
}

func TestRegister_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		status  Status
	}{
		{
			name:    "injects imports key",
			content: "@Module({\n  controllers: [AppController],\n})",
			want:    "@Module({\n  imports: [BazModule],\n  controllers: [AppController],\n})",
			status:  StatusInjected,
		},
		{
			name:    "imports outside decorator ignored",
			content: "@Module({})\nconst x = { imports: [A] };",
			want:    "@Module({\n  imports: [BazModule],})\nconst x = { imports: [A] };",
			status:  StatusInjected,
		},
		{
			name:    "no object",
			content: "@Module()\nexport class AppModule {}",
			want:    "@Module()\nexport class AppModule {}",
			status:  StatusNoObject,
		},
		{
			name:    "unbalanced array",
			content: "@Module({\n  imports: [A, B,\n})\n",
			want:    "@Module({\n  imports: [A, B,\n})\n",
			status:  StatusUnbalanced,
		},
		{
			name:    "no decorator",
			content: "export class AppModule {}",
			want:    "export class AppModule {}",
			status:  StatusNoDecorator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := register(tt.content, "BazModule")
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsertImport(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "after last import",
			content: "import a from 'a';\nimport b from 'b';\n\n@Module({})",
			want:    "import a from 'a';\nimport b from 'b';\nL\n\n@Module({})",
		},
		{
			name:    "indented import counts",
			content: "import a from 'a';\n  import b from 'b';\nx",
			want:    "import a from 'a';\n  import b from 'b';\nL\nx",
		},
		{
			name:    "no imports prepends",
			content: "@Module({})",
			want:    "L\n@Module({})",
		},
		{
			name:    "crlf preserved",
			content: "import a;\r\n\r\nx",
			want:    "import a;\r\nL\r\n\r\nx",
		},
		{
			name:    "identifier starting with import is not an import",
			content: "important();",
			want:    "L\nimportant();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insertImport(tt.content, "L"))
		})
	}
}

func TestImportLine(t *testing.T) {
	assert.Equal(t, "import { UsersModule } from './users/users.module';", ImportLine("UsersModule", "./users/users.module"))
}

func TestImportPath(t *testing.T) {
	tests := []struct {
		name      string
		appModule string
		moduleDir string
		alias     bool
		want      string
	}{
		{"sibling tree", "/w/src/app.module.ts", "/w/src/modules/users", false, "./modules/users/users.module"},
		{"nested app module", "/w/src/app/app.module.ts", "/w/src/modules/users", false, "../modules/users/users.module"},
		{"alias", "/w/src/app.module.ts", "/w/src/modules/users", true, "@/users/users.module"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImportPath(tt.appModule, tt.moduleDir, "users", tt.alias))
		})
	}
}

func TestFind(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/w/src/core/deep/App.Module.ts", []byte(""), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/w/src/main.ts", []byte(""), 0o644))

	path, ok := Find(fsys, "/w/src")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/w/src/core/deep", "App.Module.ts"), path)
}

func TestFind_Missing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/w/src/main.ts", []byte(""), 0o644))

	_, ok := Find(fsys, "/w/src")
	assert.False(t, ok)

	_, ok = Find(fsys, "/does/not/exist")
	assert.False(t, ok)
}

func registerOpts(fsys afero.Fs) Options {
	return Options{
		FS:          fsys,
		SearchDir:   "/w/src",
		ModuleDir:   "/w/src/modules/users",
		ModuleKebab: "users",
	}
}

func TestRegisterFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := "/w/src/app.module.ts"
	require.NoError(t, afero.WriteFile(fsys, path, []byte(appModule), 0o644))

	res := Register(registerOpts(fsys))

	assert.Equal(t, path, res.Path)
	assert.Equal(t, "UsersModule", res.ClassName)
	assert.Equal(t, StatusAdded, res.Status)
	assert.True(t, res.Changed())
	assert.Empty(t, res.Warnings)

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, res.After, string(data))
	assert.Contains(t, string(data), usersImport)

	again := Register(registerOpts(fsys))
	assert.Equal(t, StatusPresent, again.Status)
	assert.False(t, again.Changed())
}

func TestRegisterFile_NotFound(t *testing.T) {
	res := Register(registerOpts(afero.NewMemMapFs()))

	assert.Equal(t, StatusNotFound, res.Status)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], FileName)
}

func TestRegisterFile_WriteFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/w/src/app.module.ts", []byte(appModule), 0o644))

	res := Register(registerOpts(afero.NewReadOnlyFs(base)))

	assert.Equal(t, StatusFailed, res.Status)
	assert.False(t, res.Changed())
	assert.NotEmpty(t, res.Warnings)
}

func TestMatchClose(t *testing.T) {
	s := `(a, "(", '\'', ` + "`)`" + `, // )
b)`
	idx, ok := matchClose(s, 0, '(', ')')
	require.True(t, ok)
	assert.Equal(t, len(s)-1, idx)

	_, ok = matchClose("(a", 0, '(', ')')
	assert.False(t, ok)
}

func TestIdentifiers(t *testing.T) {
	got := identifiers("A, /* B */ Foo.forRoot('C', `D`), // E\n $F_1")
	assert.Equal(t, []string{"A", "Foo", "forRoot", "$F_1"}, got)
}

func TestLastCode(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", -1},
		{"  /* x */ // y\n", -1},
		{"A, // y\n", 1},
		{"A /* ] */", 0},
		{"'a' ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, lastCode(tt.in))
		})
	}
}
