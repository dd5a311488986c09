package schema

// CatalogRoleTable represents the 'catalog.role' table
type CatalogRoleTable struct {
	Table     string
	ID        string
	Libelle   string
	ArtisteID string
	FilmID    string
	CreatedAt string
	UpdatedAt string
}

// CatalogRole is the schema definition for catalog.role
var CatalogRole = CatalogRoleTable{
	Table:     "catalog.role",
	ID:        "id",
	Libelle:   "libelle",
	ArtisteID: "artisteid",
	FilmID:    "filmid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
