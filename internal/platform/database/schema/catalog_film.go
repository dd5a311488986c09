package schema

// CatalogFilmTable represents the 'catalog.film' table
type CatalogFilmTable struct {
	Table          string
	ID             string
	Titre          string
	Annee          string
	Genre          string
	Resume         string
	DocumentChemin string
	RealisateurID  string
	PaysCode       string
	CreatedAt      string
	UpdatedAt      string
}

// CatalogFilm is the schema definition for catalog.film
var CatalogFilm = CatalogFilmTable{
	Table:          "catalog.film",
	ID:             "id",
	Titre:          "titre",
	Annee:          "annee",
	Genre:          "genre",
	Resume:         "resume",
	DocumentChemin: "document_chemin",
	RealisateurID:  "realisateurid",
	PaysCode:       "payscode",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}
