package session

// subSep joins folder and subfolder names into a subfolder key. It never
// occurs in a folder name typed into a form, so subfolder keys and folder
// keys never collide.
const subSep = "\x1f"

// ViewState is the display state of the public page for one visitor.
// Everything starts closed and locked.
type ViewState struct {
	OpenFolders     map[string]bool `json:"openFolders,omitempty"`
	OpenSubfolders  map[string]bool `json:"openSubfolders,omitempty"`
	UnlockedFolders map[string]bool `json:"unlockedFolders,omitempty"`
	UnlockedLinks   map[string]bool `json:"unlockedLinks,omitempty"`
}

// NewViewState returns an empty state.
func NewViewState() *ViewState {
	return &ViewState{
		OpenFolders:     map[string]bool{},
		OpenSubfolders:  map[string]bool{},
		UnlockedFolders: map[string]bool{},
		UnlockedLinks:   map[string]bool{},
	}
}

// SubfolderKey returns the key of subfolder sub inside folder.
func SubfolderKey(folder, sub string) string {
	return folder + subSep + sub
}

// ToggleFolder flips the open state of folder.
func (v *ViewState) ToggleFolder(folder string) {
	v.ensure()
	flip(v.OpenFolders, folder)
}

// ToggleSubfolder flips the open state of one subfolder only. The parent
// folder keeps its state.
func (v *ViewState) ToggleSubfolder(folder, sub string) {
	v.ensure()
	flip(v.OpenSubfolders, SubfolderKey(folder, sub))
}

// FolderOpen reports whether folder is expanded.
func (v *ViewState) FolderOpen(folder string) bool {
	return v.OpenFolders[folder]
}

// SubfolderOpen reports whether the subfolder is expanded.
func (v *ViewState) SubfolderOpen(folder, sub string) bool {
	return v.OpenSubfolders[SubfolderKey(folder, sub)]
}

// UnlockFolder marks folder as unlocked and opens it.
func (v *ViewState) UnlockFolder(folder string) {
	v.ensure()
	v.UnlockedFolders[folder] = true
	v.OpenFolders[folder] = true
}

// FolderUnlocked reports whether the folder password was entered.
func (v *ViewState) FolderUnlocked(folder string) bool {
	return v.UnlockedFolders[folder]
}

// UnlockLink marks the link as unlocked.
func (v *ViewState) UnlockLink(id string) {
	v.ensure()
	v.UnlockedLinks[id] = true
}

// LinkUnlocked reports whether the link password was entered.
func (v *ViewState) LinkUnlocked(id string) bool {
	return v.UnlockedLinks[id]
}

// ensure allocates maps dropped by omitempty during decoding.
func (v *ViewState) ensure() {
	if v.OpenFolders == nil {
		v.OpenFolders = map[string]bool{}
	}
	if v.OpenSubfolders == nil {
		v.OpenSubfolders = map[string]bool{}
	}
	if v.UnlockedFolders == nil {
		v.UnlockedFolders = map[string]bool{}
	}
	if v.UnlockedLinks == nil {
		v.UnlockedLinks = map[string]bool{}
	}
}

func flip(m map[string]bool, key string) {
	if m[key] {
		delete(m, key)
		return
	}

	m[key] = true
}
