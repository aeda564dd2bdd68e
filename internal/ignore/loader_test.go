package ignore

import (
	"fmt"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

// recordingLogger keeps formatted messages per level.
type recordingLogger struct {
	mu   sync.Mutex
	msgs map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{msgs: map[string][]string{}}
}

func (r *recordingLogger) add(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs[level] = append(r.msgs[level], fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debug(format string, args ...interface{}) { r.add("debug", format, args...) }
func (r *recordingLogger) Info(format string, args ...interface{})  { r.add("info", format, args...) }
func (r *recordingLogger) Warn(format string, args ...interface{})  { r.add("warn", format, args...) }
func (r *recordingLogger) Error(format string, args ...interface{}) { r.add("error", format, args...) }

func (r *recordingLogger) count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs[level])
}

func TestParseLines(t *testing.T) {
	content := "\ufeff# comment\n*.log\r\n\n   \n  build/  \n!keep.log\n\t# indented comment\n"

	assert.Equal(t, []string{"*.log", "build/", "!keep.log"}, ParseLines(content))
	assert.Empty(t, ParseLines(""))
	assert.Empty(t, ParseLines("# only\n\n"))
}

func TestLoadRules(t *testing.T) {
	fsys := fstest.MapFS{
		".gitignore":       {Data: []byte("*.log\n# skip\n/dist\n")},
		".dockerignore":    {Data: []byte("tmp/\n")},
		"src/.gitignore":   {Data: []byte("!keep.log\n")},
		"empty/.gitignore": {Data: []byte("\n# nothing\n")},
		"empty/file.txt":   {Data: []byte("x")},
	}

	t.Run("root default name", func(t *testing.T) {
		assert.Equal(t, []string{"*.log", "/dist"}, LoadRules(fsys, ".", DefaultIgnoreFileNames(), nil))
	})

	t.Run("files read in the given order", func(t *testing.T) {
		got := LoadRules(fsys, ".", []string{".dockerignore", ".gitignore"}, nil)
		assert.Equal(t, []string{"tmp/", "*.log", "/dist"}, got)
	})

	t.Run("nested directory", func(t *testing.T) {
		assert.Equal(t, []string{"!keep.log"}, LoadRules(fsys, "src", DefaultIgnoreFileNames(), nil))
	})

	t.Run("missing files are silent", func(t *testing.T) {
		log := newRecordingLogger()
		assert.Empty(t, LoadRules(fsys, "src", []string{".nope"}, log))
		assert.Zero(t, log.count("warn"))
	})

	t.Run("comment only file", func(t *testing.T) {
		assert.Empty(t, LoadRules(fsys, "empty", DefaultIgnoreFileNames(), nil))
	})
}

func TestLoadRulesUnreadableFile(t *testing.T) {
	fsys := fstest.MapFS{
		// a directory where the ignore file is expected cannot be read
		".gitignore/inner": {Data: []byte("x")},
		".myignore":        {Data: []byte("*.tmp\n")},
	}
	log := newRecordingLogger()

	got := LoadRules(fsys, ".", []string{".gitignore", ".myignore"}, log)

	assert.Equal(t, []string{"*.tmp"}, got)
	assert.Equal(t, 1, log.count("warn"))
}

func TestLoadRulesMissingDirectory(t *testing.T) {
	var fsys fs.FS = fstest.MapFS{}
	assert.Nil(t, LoadRules(fsys, "missing/dir", DefaultIgnoreFileNames(), nil))
}
