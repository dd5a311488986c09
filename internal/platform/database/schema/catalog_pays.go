package schema

// CatalogPaysTable represents the 'catalog.pays' table
type CatalogPaysTable struct {
	Table     string
	Code      string
	Nom       string
	Langue    string
	CreatedAt string
	UpdatedAt string
}

// CatalogPays is the schema definition for catalog.pays
var CatalogPays = CatalogPaysTable{
	Table:     "catalog.pays",
	Code:      "code",
	Nom:       "nom",
	Langue:    "langue",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
