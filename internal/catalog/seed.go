package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func DefaultSeed() []Product {
	return []Product{
		{ID: 1, Name: "Vintage Camera", Price: 299, Category: "Electronics"},
		{ID: 2, Name: "Leather Jacket", Price: 150, Category: "Apparel"},
		{ID: 3, Name: "Coffee Maker", Price: 75, Category: "Home Goods"},
		{ID: 4, Name: "Stylish Backpack", Price: 80, Category: "Accessories"},
		{ID: 5, Name: "Wireless Headphones", Price: 120, Category: "Electronics"},
		{ID: 6, Name: "Running Shoes", Price: 95, Category: "Apparel"},
	}
}

type seedFile struct {
	Products []Product `yaml:"products"`
}

// LoadSeed reads the initial catalog from a YAML file. An empty path
// returns DefaultSeed.
func LoadSeed(path string) ([]Product, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	var sf seedFile
	if err := yaml.NewDecoder(file).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return sf.Products, nil
}
