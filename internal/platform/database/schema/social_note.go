package schema

// SocialNoteTable represents the 'social.note' table
type SocialNoteTable struct {
	Table        string
	ID           string
	InternauteID string
	FilmID       string
	Note         string
	Commentaire  string
	CreatedAt    string
	UpdatedAt    string
}

// SocialNote is the schema definition for social.note
var SocialNote = SocialNoteTable{
	Table:        "social.note",
	ID:           "id",
	InternauteID: "internauteid",
	FilmID:       "filmid",
	Note:         "note",
	Commentaire:  "commentaire",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
