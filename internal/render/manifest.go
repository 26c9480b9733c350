package render

// ManifestRow is one wallpaper line in the pack manifest table.
type ManifestRow struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	License string `json:"license"`
}

// ManifestInput is the data record for the pack manifest document. Date is
// caller-supplied, pre-formatted text; the renderer does no date handling.
// The entry count in the output is computed from Wallpapers, never supplied.
type ManifestInput struct {
	Name       string        `json:"name"`
	Date       string        `json:"date"`
	Comments   string        `json:"comments"`
	Wallpapers []ManifestRow `json:"wallpapers"`
}

// PackManifest renders the pack manifest markdown document. Every field is
// inserted verbatim: a '|' in a table cell or a triple backtick in Comments
// will corrupt the output, and sanitizing those is the caller's job.
func PackManifest(in ManifestInput) (string, error) {
	if in.Wallpapers == nil {
		in.Wallpapers = []ManifestRow{}
	}

	e, err := engine()
	if err != nil {
		return "", err
	}
	return e.Render("pack-manifest.md.tpl", in)
}

// DesktopEntry carries the per-wallpaper fields the desktop-environment
// templates need.
type DesktopEntry struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Email     string `json:"email"`
	License   string `json:"license"`
	EntryName string `json:"entry_name"`
	ImagePath string `json:"image_path"`
}

// GNOMEAlbum renders the background-properties XML listing every wallpaper
// in the album. Text fields are XML-escaped by the template.
func GNOMEAlbum(entries []DesktopEntry) (string, error) {
	if entries == nil {
		entries = []DesktopEntry{}
	}

	e, err := engine()
	if err != nil {
		return "", err
	}
	return e.Render("gnome-album.xml.tpl", struct {
		Wallpapers []DesktopEntry `json:"wallpapers"`
	}{entries})
}

// KDEMetadata renders the metadata.desktop file for a single wallpaper.
func KDEMetadata(entry DesktopEntry) (string, error) {
	e, err := engine()
	if err != nil {
		return "", err
	}
	return e.Render("kde-metadata.desktop.tpl", struct {
		Wallpaper DesktopEntry `json:"wallpaper"`
	}{entry})
}
