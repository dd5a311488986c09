package schema

// UsersInternauteTable represents the 'users.internaute' table
type UsersInternauteTable struct {
	Table          string
	ID             string
	Email          string
	Nom            string
	Prenom         string
	MotDePasse     string
	AnneeNaissance string
	Actif          string
	CreatedAt      string
	UpdatedAt      string
}

// UsersInternaute is the schema definition for users.internaute
var UsersInternaute = UsersInternauteTable{
	Table:          "users.internaute",
	ID:             "id",
	Email:          "email",
	Nom:            "nom",
	Prenom:         "prenom",
	MotDePasse:     "motdepasse",
	AnneeNaissance: "anneenaissance",
	Actif:          "actif",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}
