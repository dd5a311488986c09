package schema

// CatalogArtisteTable represents the 'catalog.artiste' table
type CatalogArtisteTable struct {
	Table          string
	ID             string
	Nom            string
	Prenom         string
	AnneeNaissance string
	CreatedAt      string
	UpdatedAt      string
}

// CatalogArtiste is the schema definition for catalog.artiste
var CatalogArtiste = CatalogArtisteTable{
	Table:          "catalog.artiste",
	ID:             "id",
	Nom:            "nom",
	Prenom:         "prenom",
	AnneeNaissance: "anneenaissance",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}
