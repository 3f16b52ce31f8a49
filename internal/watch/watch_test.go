package watch

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	w := &Watcher{ignore: []string{"zz_generated_commands.go", "zz_generated_manifest.go"}}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "source write",
			event: fsnotify.Event{Name: "internal/actions/user.go", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "source create",
			event: fsnotify.Event{Name: "internal/actions/server.go", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "source remove",
			event: fsnotify.Event{Name: "internal/actions/old.go", Op: fsnotify.Remove},
			want:  true,
		},
		{
			name:  "chmod only",
			event: fsnotify.Event{Name: "internal/actions/user.go", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "non-go file",
			event: fsnotify.Event{Name: "README.md", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "test file",
			event: fsnotify.Event{Name: "internal/actions/user_test.go", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "generated artifact",
			event: fsnotify.Event{Name: "internal/actions/zz_generated_commands.go", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "generated manifest",
			event: fsnotify.Event{Name: "cmd/dg/zz_generated_manifest.go", Op: fsnotify.Create},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}
