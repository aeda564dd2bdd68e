// Package content reads and classifies the files of a scanned tree for
// display. It never takes part in building the tree.
package content

import (
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gabriel-vasile/mimetype"

	"github.com/bethropolis/dir-tree/internal/tree"
)

// kind is the intrinsic type of a file before it is mapped to a display type.
type kind int

const (
	kindText kind = iota
	kindMarkdown
	kindImage
	kindPDF
	kindCode
	kindBinary
)

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

var (
	codeExtensions = set(
		"js", "ts", "jsx", "tsx", "json", "html", "htm", "css", "scss", "less",
		"xml", "yaml", "yml", "toml", "py", "rb", "php", "java", "c", "cpp",
		"h", "hpp", "cs", "rs", "go", "swift", "kt", "sh", "bash", "ps1",
		"bat", "cmd", "sql", "graphql", "gql", "svelte", "vue",
	)
	markdownExtensions = set("md", "markdown")
	textExtensions     = set("txt", "log", "csv", "tsv")
	imageExtensions    = set("png", "jpg", "jpeg", "gif", "bmp", "webp", "svg", "ico")
	pdfExtensions      = set("pdf")
	binaryExtensions   = set(
		"zip", "tar", "gz", "rar", "7z", "exe", "dll", "bin", "o", "a", "so",
		"dylib", "app", "msi", "doc", "docx", "xls", "xlsx", "ppt", "pptx",
		"odt", "ods", "odp", "mp3", "wav", "ogg", "aac", "flac", "mp4", "avi",
		"mov", "wmv", "mkv", "webm", "iso", "img", "dmg", "wasm", "eot", "ttf",
		"woff", "woff2", "class", "jar",
	)
)

// Extension returns the lower-cased extension of name without the dot.
// Dotfiles such as ".gitignore" and names ending in a dot have none.
func Extension(name string) string {
	name = path.Base(name)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// intrinsicKind classifies by extension first and falls back on the
// detected MIME type.
func intrinsicKind(ext string, mime *mimetype.MIME) kind {
	if _, ok := markdownExtensions[ext]; ok {
		return kindMarkdown
	}
	if _, ok := imageExtensions[ext]; ok {
		return kindImage
	}
	if _, ok := pdfExtensions[ext]; ok {
		return kindPDF
	}
	if _, ok := codeExtensions[ext]; ok {
		return kindCode
	}
	if _, ok := textExtensions[ext]; ok {
		return kindText
	}

	if mime != nil {
		base := mediaType(mime)
		switch {
		case strings.HasPrefix(base, "image/"):
			return kindImage
		case base == "application/pdf":
			return kindPDF
		case base == "text/markdown":
			return kindMarkdown
		case base == "text/plain":
			return kindText
		case strings.HasPrefix(base, "text/"),
			strings.Contains(base, "javascript"),
			strings.Contains(base, "json"),
			strings.Contains(base, "xml"):
			return kindCode
		case strings.HasPrefix(base, "audio/"),
			strings.HasPrefix(base, "video/"),
			base == "application/octet-stream":
			return kindBinary
		}
	}

	if _, ok := binaryExtensions[ext]; ok {
		return kindBinary
	}
	return kindText
}

func mediaType(mime *mimetype.MIME) string {
	base, _, _ := strings.Cut(mime.String(), ";")
	return strings.ToLower(strings.TrimSpace(base))
}

// Classify derives the display properties of a file from its name and
// content. The returned Content carries no Data.
func Classify(name string, data []byte) tree.Content {
	mime := mimetype.Detect(data)
	ext := Extension(name)

	c := tree.Content{MIME: mediaType(mime), Size: int64(len(data))}
	switch intrinsicKind(ext, mime) {
	case kindMarkdown:
		c.Language, c.FileType = "markdown", tree.FileTypeRendered
	case kindImage:
		c.Language, c.FileType = ext, tree.FileTypeGraphic
	case kindPDF:
		c.Language, c.FileType = "pdf", tree.FileTypeBinary
	case kindCode:
		c.Language, c.FileType = codeLanguage(name, ext, data), tree.FileTypeCode
	case kindBinary:
		c.Language, c.FileType = ext, tree.FileTypeBinary
	default:
		c.Language, c.FileType = "plaintext", tree.FileTypeText
	}
	return c
}

// codeLanguage names the highlighting language, by file name first and by
// content analysis second.
func codeLanguage(name, ext string, data []byte) string {
	lexer := lexers.Match(path.Base(name))
	if lexer == nil {
		lexer = lexers.Analyse(string(data))
	}
	if lexer != nil {
		return strings.ToLower(lexer.Config().Name)
	}
	if ext != "" {
		return ext
	}
	return "unknown"
}

// IsTextual reports whether files of type t are kept as text.
func IsTextual(t tree.FileType) bool {
	switch t {
	case tree.FileTypeCode, tree.FileTypeText, tree.FileTypeRendered:
		return true
	}
	return false
}
