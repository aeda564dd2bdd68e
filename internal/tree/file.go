package tree

import "sync"

// FileType is the display classification of a file.
type FileType string

const (
	FileTypeCode     FileType = "code"
	FileTypeRendered FileType = "rendered"
	FileTypeText     FileType = "text"
	FileTypeGraphic  FileType = "graphic"
	FileTypeBinary   FileType = "binary"
)

// LoadState reports whether a file's content has been loaded.
type LoadState int

const (
	Unloaded LoadState = iota
	Loaded
)

func (s LoadState) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "unloaded"
}

// Content is the payload attached to a file once a loader has read it.
type Content struct {
	// Data is nil for types that are not displayed as text.
	Data     []byte
	Language string
	FileType FileType
	MIME     string
	Size     int64
}

// File is the file variant of Entry. Its identity is fixed at creation; the
// selection flag and content belong to the collaborators that set them.
type File struct {
	header

	mu       sync.RWMutex
	selected bool
	state    LoadState
	content  Content
}

// NewFile creates an unselected, unloaded file at root-relative path p.
func NewFile(p string) *File {
	return &File{header: newHeader(p)}
}

func (f *File) Kind() Kind { return KindFile }

func (f *File) Selected() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.selected
}

func (f *File) SetSelected(selected bool) {
	f.mu.Lock()
	f.selected = selected
	f.mu.Unlock()
}

func (f *File) State() LoadState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Content returns the loaded payload. ok is false while the file is
// Unloaded.
func (f *File) Content() (c Content, ok bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.state != Loaded {
		return Content{}, false
	}
	return f.content, true
}

// SetContent stores c and moves the file to Loaded.
func (f *File) SetContent(c Content) {
	f.mu.Lock()
	f.content = c
	f.state = Loaded
	f.mu.Unlock()
}

// Unload drops any loaded payload.
func (f *File) Unload() {
	f.mu.Lock()
	f.content = Content{}
	f.state = Unloaded
	f.mu.Unlock()
}
