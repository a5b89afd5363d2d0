package docscrape

// ReleaseNote is the title and editor line of a "What's New" article.
type ReleaseNote struct {
	Title   string
	Editors string
}

// Version is one entry of the documentation version switcher.
type Version struct {
	Link    string
	Version string
	Status  string
}

// ProposalRef is a PEP listed in the numerical index.
type ProposalRef struct {
	URL string

	// Status is the status letter from the index table, possibly empty.
	Status string
}

// Parser extracts structured data from the known documentation pages.
// Every method fails with EMISSING when an expected element is absent.
type Parser interface {
	// ReleaseNoteLinks returns absolute links to the per-version
	// "What's New" articles listed on the index page at pageURL.
	ReleaseNoteLinks(html, pageURL string) ([]string, error)

	// ReleaseNote extracts the title and editors of an article page.
	ReleaseNote(html string) (*ReleaseNote, error)

	// Versions returns the entries of the "All versions" sidebar list.
	Versions(html string) ([]Version, error)

	// ArchiveLink returns the absolute URL of the PDF (A4) zip archive.
	ArchiveLink(html, pageURL string) (string, error)

	// ProposalRefs returns the PEPs listed in the numerical index.
	ProposalRefs(html, pageURL string) ([]ProposalRef, error)

	// ProposalStatus returns the status field of a PEP page.
	ProposalStatus(html string) (string, error)
}
