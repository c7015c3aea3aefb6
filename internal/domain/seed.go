package domain

// SeedPlaces returns the fixed two-entry collection used to initialize a
// fresh or unreadable record store. Each call returns new slices.
func SeedPlaces() []Place {
	return []Place{
		{
			ID:            "wgl_fort",
			Name:          "Warangal Fort (వరంగల్ కోట)",
			Type:          "Fortress",
			Region:        "Warangal",
			Era:           "12th Century CE",
			ContributorID: "s_rao",
			Image:         "https://upload.wikimedia.org/wikipedia/commons/a/a8/Warangal_Fort_Entrance.jpg",
			Story:         "The fort was the capital of the Kakatiya dynasty. The intricate stone gateways, known as Kakatiya Kala Thoranam, are an architectural marvel and have become a symbol of Telangana.",
			Tags:          []string{"Kakatiya", "Stone Archway", "Archaeology"},
			Comments: []Comment{
				{User: "Priya K.", Text: "The detail on the arches is incredible!"},
			},
		},
		{
			ID:            "chowmahalla",
			Name:          "Chowmahalla Palace (చౌమహల్లా ప్యాలెస్)",
			Type:          "Traditional Home (Palace)",
			Region:        "Hyderabad",
			Era:           "18th-19th Century CE",
			ContributorID: "priya_k",
			Image:         "https://upload.wikimedia.org/wikipedia/commons/thumb/c/ca/Chowmahalla_Palace_Hyderabad_India.jpg/1280px-Chowmahalla_Palace_Hyderabad_India.jpg",
			Story:         "This was the seat of the Asaf Jahi dynasty and the official residence of the Nizams of Hyderabad. Its name means 'Four Palaces'. The grand Khilwat Mubarak hall is breathtaking.",
			Tags:          []string{"Nizam", "Courtyard", "Palace"},
			Comments:      []Comment{},
		},
	}
}

// SeedContributors returns the contributors referenced by SeedPlaces plus
// the curator account, for stores that keep contributors in memory.
func SeedContributors() []Contributor {
	return []Contributor{
		{Username: "s_rao", DisplayName: "S. Rao", Contributions: 2, Badge: "Heritage Keeper 🏅"},
		{Username: "priya_k", DisplayName: "Priya K.", Contributions: 1, Badge: "Storyteller 📖"},
		{Username: "admin", DisplayName: "Admin", Contributions: 0, Badge: "Curator 🏛️"},
	}
}
