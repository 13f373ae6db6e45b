package catalog

// SampleProperties are the built-in demo listings served when the store is
// down and the fallback policy is on. Already sorted by starting price.
func SampleProperties() []Property {
	return []Property{
		{
			ID:           "sample-vila-nova",
			Name:         "Residencial Vila Nova",
			Neighborhood: "Vila Nova",
			ImageURL:     "https://images.example.com/vila-nova.jpg",
			Variations: []Variation{
				{ID: "sample-vila-nova-2q", PropertyID: "sample-vila-nova", Position: 0, AreaSqm: 48, BedroomCount: 2, Price: 289000, DetailURL: "https://imoveis.example.com/vila-nova/2q"},
				{ID: "sample-vila-nova-3q", PropertyID: "sample-vila-nova", Position: 1, AreaSqm: 62, BedroomCount: 3, Price: 349000, DetailURL: "https://imoveis.example.com/vila-nova/3q"},
			},
		},
		{
			ID:           "sample-jardim-europa",
			Name:         "Edifício Jardim Europa",
			Neighborhood: "Jardim Europa",
			ImageURL:     "https://images.example.com/jardim-europa.jpg",
			Variations: []Variation{
				{ID: "sample-jardim-europa-2q", PropertyID: "sample-jardim-europa", Position: 0, AreaSqm: 65, BedroomCount: 2, Price: 420000, DetailURL: "https://imoveis.example.com/jardim-europa/2q"},
			},
		},
		{
			ID:           "sample-alto-da-boa-vista",
			Name:         "Alto da Boa Vista Home",
			Neighborhood: "Alto da Boa Vista",
			ImageURL:     "https://images.example.com/alto-da-boa-vista.jpg",
			Variations: []Variation{
				{ID: "sample-alto-3q", PropertyID: "sample-alto-da-boa-vista", Position: 0, AreaSqm: 88, BedroomCount: 3, Price: 610000, DetailURL: "https://imoveis.example.com/alto/3q"},
				{ID: "sample-alto-4q", PropertyID: "sample-alto-da-boa-vista", Position: 1, AreaSqm: 120, BedroomCount: 4, Price: 845000, DetailURL: "https://imoveis.example.com/alto/4q"},
			},
		},
	}
}
