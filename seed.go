package atlas

// StarterFriends returns the demo collection used to try the tool before
// adding real contacts. Dates are fixed so the derived reports are
// reproducible.
func StarterFriends() []Friend {
	return []Friend{
		{
			Name:        "Alex",
			Location:    "Berlin, Germany",
			Coordinates: Coordinates{Lat: 52.5200, Lng: 13.4050},
			LastContact: NewDate(2024, 6, 15),
			CanStay:     true,
			Notes:       "Amazing photographer, has a cozy apartment in Kreuzberg",
		},
		{
			Name:        "Sam",
			Location:    "Stockholm, Sweden",
			Coordinates: Coordinates{Lat: 59.3293, Lng: 18.0686},
			LastContact: NewDate(2024, 6, 20),
			CanStay:     true,
			Notes:       "Tech startup founder, guest room available",
		},
		{
			Name:        "Jordan",
			Location:    "London, UK",
			Coordinates: Coordinates{Lat: 51.5074, Lng: -0.1278},
			LastContact: NewDate(2024, 7, 1),
			CanStay:     false,
			Notes:       "Sister Riley lives in Lisbon - can connect us!",
		},
		{
			Name:        "Riley",
			Location:    "Lisbon, Portugal",
			Coordinates: Coordinates{Lat: 38.7223, Lng: -9.1393},
			LastContact: NewDate(2024, 4, 10),
			CanStay:     true,
			Notes:       "Jordan's sister, cat sitting available, speaks fluent Portuguese",
		},
		{
			Name:        "Casey",
			Location:    "Sydney, Australia",
			Coordinates: Coordinates{Lat: -33.8688, Lng: 151.2093},
			LastContact: NewDate(2024, 3, 15),
			CanStay:     true,
			Notes:       "Surfer, has a place near Bondi Beach",
		},
		{
			Name:        "Taylor",
			Location:    "Melbourne, Australia",
			Coordinates: Coordinates{Lat: -37.8136, Lng: 144.9631},
			LastContact: NewDate(2024, 5, 22),
			CanStay:     false,
			Notes:       "Coffee expert, knows all the best spots",
		},
		{
			Name:        "Morgan",
			Location:    "Brisbane, Australia",
			Coordinates: Coordinates{Lat: -27.4698, Lng: 153.0251},
			LastContact: NewDate(2024, 2, 28),
			CanStay:     true,
			Notes:       "Adventure guide, has a spare room and local knowledge",
		},
		{
			Name:        "Avery",
			Location:    "Brussels, Belgium",
			Coordinates: Coordinates{Lat: 50.8503, Lng: 4.3517},
			LastContact: NewDate(2024, 7, 5),
			CanStay:     false,
			Notes:       "Meeting up in Brussels in August! EU policy expert",
		},
		{
			Name:        "River",
			Location:    "Barcelona, Spain",
			Coordinates: Coordinates{Lat: 41.3851, Lng: 2.1734},
			LastContact: NewDate(2024, 1, 20),
			CanStay:     true,
			Notes:       "Architect, gorgeous apartment near Park Güell",
		},
		{
			Name:        "Sage",
			Location:    "Tokyo, Japan",
			Coordinates: Coordinates{Lat: 35.6762, Lng: 139.6503},
			LastContact: NewDate(2024, 6, 30),
			CanStay:     false,
			Notes:       "Game developer, amazing ramen recommendations",
		},
	}
}
