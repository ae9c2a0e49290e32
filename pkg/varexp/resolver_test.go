package varexp_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/lwmacct/251207-go-pkg-varexp/pkg/varexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		src     varexp.Sources
		want    string
		wantErr bool
	}{
		{
			name:  "no placeholders returns input",
			input: "plain-value",
			want:  "plain-value",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "backslashes normalized without placeholders",
			input: `C:\opt\lib`,
			want:  "C:/opt/lib",
		},
		{
			name:  "simple substitution",
			input: "${root}/lib",
			src: varexp.Sources{
				Props: map[string]string{"root": "/opt"},
			},
			want: "/opt/lib",
		},
		{
			name:  "recursive value",
			input: "${a.dir}/x.jar",
			src: varexp.Sources{
				Props: map[string]string{"a.dir": "${root}/lib", "root": "/opt"},
			},
			want: "/opt/lib/x.jar",
		},
		{
			name:  "duplicate placeholders resolved once",
			input: "${root}:${root}",
			src: varexp.Sources{
				Props: map[string]string{"root": "/opt"},
			},
			want: "/opt:/opt",
		},
		{
			name:  "adjacent placeholders captured separately",
			input: "${a}${b}",
			src: varexp.Sources{
				Props: map[string]string{"a": "1", "b": "2"},
			},
			want: "12",
		},
		{
			name:  "resolved value backslashes normalized",
			input: "${p}",
			src: varexp.Sources{
				Props: map[string]string{"p": `a\b`},
			},
			want: "a/b",
		},
		{
			name:  "value from defaults",
			input: "${host}",
			src: varexp.Sources{
				Defaults: map[string]string{"host": "localhost"},
			},
			want: "localhost",
		},
		{
			name:  "dir table takes precedence",
			input: "${lib.dir}/a",
			src: varexp.Sources{
				Props: map[string]string{"lib.dir": "/should/not/be/used"},
				Dirs:  map[string]string{"lib.dir": "/usr/lib"},
			},
			want: "/usr/lib/a",
		},
		{
			name:  "env prefix falls back to stripped name",
			input: "${env.HOME}/bin",
			src: varexp.Sources{
				Defaults: map[string]string{"HOME": "/home/user"},
			},
			want: "/home/user/bin",
		},
		{
			name:  "quoted value stripped",
			input: "${msg}",
			src: varexp.Sources{
				Props: map[string]string{"msg": `"hello"`},
			},
			want: "hello",
		},
		{
			name:  "sibling branches keep independent chains",
			input: "${a}-${b}",
			src: varexp.Sources{
				Props: map[string]string{"a": "${c}", "b": "${c}", "c": "v"},
			},
			want: "v-v",
		},
		{
			name:  "direct cycle fails",
			input: "${x}",
			src: varexp.Sources{
				Props: map[string]string{"x": "${x}"},
			},
			wantErr: true,
		},
		{
			name:  "mutual cycle fails",
			input: "${x}",
			src: varexp.Sources{
				Props: map[string]string{"x": "${y}", "y": "${x}"},
			},
			wantErr: true,
		},
		{
			name:  "cycle fails whole input despite valid siblings",
			input: "${ok}-${x}",
			src: varexp.Sources{
				Props: map[string]string{"ok": "v", "x": "${x}"},
			},
			wantErr: true,
		},
		{
			name:  "missing variable fails whole input",
			input: "${ok}-${missing}",
			src: varexp.Sources{
				Props: map[string]string{"ok": "v"},
			},
			wantErr: true,
		},
		{
			name:  "empty value treated as missing",
			input: "${e}",
			src: varexp.Sources{
				Props: map[string]string{"e": ""},
			},
			wantErr: true,
		},
		{
			name:  "transitively missing fails",
			input: "${a}",
			src: varexp.Sources{
				Props: map[string]string{"a": "${nope}"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := varexp.Resolve(tt.input, tt.src)
			if tt.wantErr {
				require.ErrorIs(t, err, varexp.ErrUnresolved)
				assert.Empty(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// debugLogger 返回写入 buf 的 Debug 级日志器，用于断言失败原因。
func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestResolve_DiagnosticSink(t *testing.T) {
	t.Run("cycle reported", func(t *testing.T) {
		var buf bytes.Buffer
		src := varexp.Sources{Props: map[string]string{"x": "${x}"}}

		_, err := varexp.Resolve("${x}", src, varexp.WithLogger(debugLogger(&buf)))
		require.ErrorIs(t, err, varexp.ErrUnresolved)
		assert.Contains(t, buf.String(), "recursive variable reference")
		assert.Contains(t, buf.String(), "variable=x")
	})

	t.Run("missing value reported", func(t *testing.T) {
		var buf bytes.Buffer

		_, err := varexp.Resolve("${missing}", varexp.Sources{}, varexp.WithLogger(debugLogger(&buf)))
		require.ErrorIs(t, err, varexp.ErrUnresolved)
		assert.Contains(t, buf.String(), "cannot be resolved")
		assert.Contains(t, buf.String(), "variable=missing")
	})

	t.Run("nested failure reported with raw value", func(t *testing.T) {
		var buf bytes.Buffer
		src := varexp.Sources{Props: map[string]string{"a": "${nope}"}}

		_, err := varexp.Resolve("${a}", src, varexp.WithLogger(debugLogger(&buf)))
		require.ErrorIs(t, err, varexp.ErrUnresolved)
		assert.Contains(t, buf.String(), "Could not resolve the variable value")
		assert.Contains(t, buf.String(), "value=${nope}")
	})

	t.Run("success reported with input and result", func(t *testing.T) {
		var buf bytes.Buffer
		src := varexp.Sources{Props: map[string]string{"root": "/opt"}}

		got, err := varexp.Resolve("${root}/lib", src, varexp.WithLogger(debugLogger(&buf)))
		require.NoError(t, err)
		assert.Equal(t, "/opt/lib", got)
		assert.Contains(t, buf.String(), "Expression evaluated")
		assert.Contains(t, buf.String(), "resolved=/opt/lib")
	})
}
