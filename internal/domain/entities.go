package domain

// Occurrence records how many times a keyword appears in one document.
type Occurrence struct {
	Document  string
	Frequency int
}

// Document identifies one indexed document.
type Document struct {
	ID       string
	Path     string
	Keywords int
}

// IndexStats summarizes a built index.
type IndexStats struct {
	TotalDocs        int
	TotalKeywords    int
	TotalOccurrences int
}
