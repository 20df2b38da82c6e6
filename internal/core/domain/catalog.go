package domain

import "time"

// Application is an installed application known to the launcher.
type Application struct {
	// ID is a stable identifier (usually the desktop entry path).
	ID string

	// Name is the display name.
	Name string

	// Exec is the command line used to launch the application.
	Exec string

	// Path is the location of the application entry on disk.
	Path string

	// LastUsed is the most recent launch time, zero if never launched.
	LastUsed time.Time

	// UseCount is the number of launches.
	UseCount int
}

// ResultItem converts the application to a combined-list candidate.
func (a Application) ResultItem() ResultItem {
	return ResultItem{
		Kind:        KindApplication,
		DisplayName: a.Name,
		Path:        a.Path,
		Detail:      a.Exec,
		LastUsed:    a.LastUsed,
		UseCount:    a.UseCount,
	}
}

// FileHistoryEntry is a file the user opened through the launcher before.
type FileHistoryEntry struct {
	// Path is the absolute file path.
	Path string

	// Name is the base name shown to the user.
	Name string

	// LastUsed is the most recent open time.
	LastUsed time.Time

	// UseCount is the number of opens.
	UseCount int
}

// ResultItem converts the history entry to a combined-list candidate.
func (f FileHistoryEntry) ResultItem() ResultItem {
	return ResultItem{
		Kind:        KindFileHistory,
		DisplayName: f.Name,
		Path:        f.Path,
		LastUsed:    f.LastUsed,
		UseCount:    f.UseCount,
	}
}

// Plugin is an installed command plugin.
type Plugin struct {
	// ID is a stable identifier.
	ID string

	// Name is the display name.
	Name string

	// Keyword is the trigger word the plugin matches on.
	Keyword string

	// Description is a short human-readable summary.
	Description string
}

// ResultItem converts the plugin to a combined-list candidate.
func (p Plugin) ResultItem() ResultItem {
	return ResultItem{
		Kind:        KindPlugin,
		DisplayName: p.Name,
		Path:        p.ID,
		Detail:      p.Description,
	}
}

// SystemFolder is a well-known folder offered by name (home, downloads).
type SystemFolder struct {
	// Name is the folder's display name.
	Name string

	// Path is the absolute folder path.
	Path string
}

// ResultItem converts the folder to a combined-list candidate.
func (s SystemFolder) ResultItem() ResultItem {
	return ResultItem{
		Kind:        KindSystemFolder,
		DisplayName: s.Name,
		Path:        s.Path,
	}
}

// Note is a saved note searchable by title and body.
type Note struct {
	// ID is a stable identifier.
	ID string

	// Title is the note title.
	Title string

	// Body is the note content.
	Body string

	// UpdatedAt is the last modification time.
	UpdatedAt time.Time
}

// ResultItem converts the note to a combined-list candidate.
func (n Note) ResultItem() ResultItem {
	return ResultItem{
		Kind:        KindNote,
		DisplayName: n.Title,
		Path:        n.ID,
		Detail:      n.Body,
		LastUsed:    n.UpdatedAt,
	}
}

// IndexHit is a match returned by the external file-index daemon.
type IndexHit struct {
	// Path is the absolute file path.
	Path string

	// Name is the base name.
	Name string

	// Modified is the file modification time, if reported.
	Modified time.Time
}

// ResultItem converts the index hit to a combined-list candidate.
func (h IndexHit) ResultItem() ResultItem {
	return ResultItem{
		Kind:        KindIndexHit,
		DisplayName: h.Name,
		Path:        h.Path,
	}
}
