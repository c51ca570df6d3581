// Imports a college catalog from a JSON file into the database.
// Usage: college-importer [path/to/colleges.json]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"collegit/database"
	"collegit/models"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

type JSONCollege struct {
	Name     string                 `json:"name"`
	Slug     string                 `json:"slug"`
	Location string                 `json:"location"`
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	jsonPath := "./data/colleges.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		log.Fatal("Failed to read JSON file:", err)
	}

	var entries []JSONCollege
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatal("Failed to parse JSON:", err)
	}

	fmt.Printf("Found %d colleges\n\n", len(entries))

	database.InitDB()
	db := database.GetDB()

	imported, updated := 0, 0

	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}

		slug := entry.Slug
		if slug == "" {
			slug = slugify(entry.Name)
		}

		collegeType := entry.Type
		switch collegeType {
		case models.CollegeTypePublic, models.CollegeTypePrivate, models.CollegeTypeCommunity:
		default:
			collegeType = models.CollegeTypeOther
		}

		var metadata datatypes.JSON
		if entry.Metadata != nil {
			raw, err := json.Marshal(entry.Metadata)
			if err != nil {
				log.Printf("Skipping metadata for %s: %v\n", entry.Name, err)
			} else {
				metadata = raw
			}
		}

		var existing models.College
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"name":     entry.Name,
				"location": entry.Location,
				"type":     collegeType,
				"metadata": metadata,
			}).Error; err != nil {
				log.Printf("Error updating %s: %v\n", entry.Name, err)
				continue
			}
			updated++
			continue
		}

		college := models.College{
			Name:     entry.Name,
			Slug:     slug,
			Location: entry.Location,
			Type:     collegeType,
			Metadata: metadata,
		}
		if err := db.Create(&college).Error; err != nil {
			log.Printf("Error inserting %s: %v\n", entry.Name, err)
			continue
		}
		imported++
	}

	fmt.Printf("\n✓ Import completed: %d new, %d updated\n", imported, updated)

	var count int64
	db.Model(&models.College{}).Count(&count)
	fmt.Printf("✓ Total colleges in database: %d\n", count)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	return strings.Trim(slug, "-")
}
