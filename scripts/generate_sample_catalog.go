package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// generateSampleCatalog writes a seed catalogue for local development.
// Point SEED_PATH at the generated file to populate an empty store on
// startup.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalog := map[string]interface{}{
		"products": []map[string]string{
			{
				"name":        "Ceramic Mug",
				"description": "Hand-glazed 350ml ceramic mug",
				"price":       "9.99",
				"image":       "https://images.example.com/mug.png",
			},
			{
				"name":        "Cork Coaster Set",
				"description": "Set of four natural cork coasters",
				"price":       "6.50",
				"image":       "https://images.example.com/coasters.png",
			},
			{
				"name":        "Linen Tea Towel",
				"description": "Washed linen tea towel, 50x70cm",
				"price":       "12.00",
				"image":       "https://images.example.com/towel.png",
			},
			{
				"name":        "Walnut Serving Board",
				"description": "Solid walnut board with juice groove",
				"price":       "34.00",
				"image":       "https://images.example.com/board.png",
			},
			{
				"name":        "Stoneware Pitcher",
				"description": "1.2l stoneware pitcher in matte white",
				"price":       "28.50",
				"image":       "https://images.example.com/pitcher.png",
			},
		},
	}

	path := filepath.Join(dataDir, "catalog.json")
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		log.Fatalf("Failed to write catalogue: %v", err)
	}

	log.Printf("Wrote sample catalogue to %s", path)
}
