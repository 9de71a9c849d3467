package domain

// Visibility of a note
type Visibility string

// enum of note visibilities
const (
	VisibilityPublic    Visibility = "public"
	VisibilityHome      Visibility = "home"
	VisibilityFollowers Visibility = "followers"
	VisibilitySpecified Visibility = "specified"
)

// Note is an inbound note received from a streaming channel
type Note struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Visibility Visibility `json:"visibility"`
	Mentions   []string   `json:"mentions"`
	User       NoteUser   `json:"user"`
}

// NoteUser is the author of a note as embedded in streaming payloads
type NoteUser struct {
	Account
	Instance *Instance `json:"instance,omitempty"`
}

// Instance describes the remote server of a note author
type Instance struct {
	Name string `json:"name"`
}

// MentionsAccount reports whether the note mentions the given account id
func (n Note) MentionsAccount(id string) bool {
	for _, m := range n.Mentions {
		if m == id {
			return true
		}
	}
	return false
}

// InstanceName returns the author's instance name or empty string for local notes
func (n Note) InstanceName() string {
	if n.User.Instance == nil {
		return ""
	}
	return n.User.Instance.Name
}

// PostOptions are optional parameters of a new note
type PostOptions struct {
	Visibility     Visibility
	VisibleUserIDs []string
	FileIDs        []string
	ReplyID        string
	CW             string
	LocalOnly      bool
}

// Emoji is a custom emoji registered on the server
type Emoji struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	Category string   `json:"category"`
}
