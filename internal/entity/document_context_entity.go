package entity

// DocumentContext holds text extracted from an uploaded file, scoped to a
// single chat session. Entries live only in process memory and are replaced
// wholesale on re-upload.
type DocumentContext struct {
	SessionId string
	Kind      string
	Text      string
	Truncated bool

	// Per-kind summary metadata. Zero values mean "not applicable".
	Pages     int
	Rows      int
	Columns   int
	Slides    int
	SheetName string
}
