// Package docscrape extracts tabular data from the Python documentation
// site and the PEP index: release notes, version status and PEP status
// counts. It can also download the PDF documentation archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gopretty/).
package docscrape
