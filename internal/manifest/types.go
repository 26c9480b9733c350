package manifest

// MetaFileName is the metadata file every contributor directory must contain.
const MetaFileName = "me.json"

// Wallpaper describes a single submission inside a contributor's me.json.
// The short field names are the on-disk wire format.
type Wallpaper struct {
	Index   int      `json:"i"`
	Format  string   `json:"f"`
	Title   string   `json:"t"`
	License string   `json:"l"`
	Tags    []string `json:"tags,omitempty"`
}

// Contributor is the me.json root object.
type Contributor struct {
	Name       string      `json:"name"`
	Username   string      `json:"uname"`
	Email      string      `json:"email"`
	URI        string      `json:"uri"`
	Src        *string     `json:"src,omitempty"`
	Wallpapers []Wallpaper `json:"wallpapers"`
}

// Selection is one line of a pack file: a contributor username and the index
// of one of their wallpapers.
type Selection struct {
	Username string
	Index    int
}

// Find returns the wallpaper with the given index, or false if the
// contributor has no submission under that index.
func (c *Contributor) Find(index int) (Wallpaper, bool) {
	for _, w := range c.Wallpapers {
		if w.Index == index {
			return w, true
		}
	}
	return Wallpaper{}, false
}
