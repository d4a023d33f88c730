package token

import "os"

// File represents one compilation unit: its name, raw source bytes, and the
// byte offset of the start of each line (used to render caret diagnostics).
type File struct {
	Name  string
	Src   []byte
	Lines []int
	Err   error
}

// NewFile loads src (or reads filename if src is nil) and precomputes line
// offsets. Read errors are recorded on Err rather than returned, so callers
// can construct a File unconditionally and check Err afterward.
func NewFile(filename string, src any) *File {
	file := &File{Name: filename}

	srcBytes, err := readSource(filename, src)
	if err != nil {
		file.Err = err
		srcBytes = []byte{}
	}

	file.Src = srcBytes
	file.Lines = computeLineOffsets(srcBytes)
	return file
}

func readSource(filename string, src any) ([]byte, error) {
	if src != nil {
		switch src := src.(type) {
		case string:
			return []byte(src), nil
		case []byte:
			return src, nil
		}
	}
	return os.ReadFile(filename)
}

func computeLineOffsets(src []byte) []int {
	offsets := []int{0}
	for i, c := range src {
		if c == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// Line returns the source text of the given 1-indexed line number, without
// its trailing newline. Returns "" for an out-of-range line.
func (f *File) Line(line int) string {
	i := line - 1
	if i < 0 || i >= len(f.Lines) {
		return ""
	}

	start := f.Lines[i]
	end := len(f.Src)
	if i+1 < len(f.Lines) {
		end = f.Lines[i+1] - 1
	}
	for end > start && (f.Src[end-1] == '\n' || f.Src[end-1] == '\r') {
		end--
	}

	return string(f.Src[start:end])
}
