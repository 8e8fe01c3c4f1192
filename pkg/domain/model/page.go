package model

import "time"

// ThemeColor is one theme-color meta entry scoped to a media query
type ThemeColor struct {
	Media string
	Color string
}

// Viewport holds the viewport meta settings
type Viewport struct {
	Width        string
	InitialScale float64
}

// PageMetadata is the declarative document head of the download page
type PageMetadata struct {
	Title       string
	Description string
	ThemeColors []ThemeColor
	Viewport    Viewport
}

// DownloadPageMetadata returns the fixed metadata of the download page. A new
// value is returned on each call so callers cannot mutate a shared instance.
func DownloadPageMetadata() PageMetadata {
	return PageMetadata{
		Title:       "Download",
		Description: "Download Drifty",
		ThemeColors: []ThemeColor{
			{Media: "(prefers-color-scheme: dark)", Color: "#0000cd"},
			{Media: "(prefers-color-scheme: light)", Color: "#26a3f1"},
		},
		Viewport: Viewport{
			Width:        "device-width",
			InitialScale: 1,
		},
	}
}

// SectionKind identifies a top-level page section
type SectionKind string

const (
	SectionHeader   SectionKind = "header"
	SectionReleases SectionKind = "releases"
	SectionFooter   SectionKind = "footer"
)

// Section is one top-level block of the page. Releases is set only for
// SectionReleases.
type Section struct {
	Kind     SectionKind
	Class    string
	Releases *ReleaseList
}

// Page is a composed download page ready to be rendered
type Page struct {
	Metadata   PageMetadata
	Sections   []Section
	Revalidate time.Duration
}
