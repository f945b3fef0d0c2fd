// Package facts holds the static label lookup table for detection enrichment.
// The table is immutable after process start and safe for concurrent reads.
package facts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"drone-vision-go/internal/models"
)

var titleCaser = cases.Title(language.English)

var animalFacts = map[string]models.AnimalFact{
	"zebra": {
		Title:          "Zebra",
		Fact:           "Zebras have unique stripe patterns, like human fingerprints!",
		Habitat:        "African Savannas",
		Emoji:          "🦓",
		Diet:           "Herbivore",
		Lifespan:       "25 years",
		Speed:          "65 km/h",
		Weight:         "300-400 kg",
		CollectiveNoun: "A dazzle of zebras",
	},
	"elephant": {
		Title:          "Elephant",
		Fact:           "Elephants are the largest land animals and have amazing memory.",
		Habitat:        "Forests & Savannas",
		Emoji:          "🐘",
		Diet:           "Herbivore",
		Lifespan:       "60-70 years",
		Speed:          "40 km/h",
		Weight:         "6,000 kg",
		CollectiveNoun: "A parade of elephants",
	},
	"cat": {
		Title:          "Cat",
		Fact:           "Cats can jump up to six times their length.",
		Habitat:        "Domestic",
		Emoji:          "🐱",
		Diet:           "Carnivore",
		Lifespan:       "12-18 years",
		Speed:          "48 km/h",
		Weight:         "4-5 kg",
		CollectiveNoun: "A clowder of cats",
	},
	"dog": {
		Title:          "Dog",
		Fact:           "Dogs are known as 'man's best friend' for their loyalty.",
		Habitat:        "Domestic",
		Emoji:          "🐶",
		Diet:           "Omnivore",
		Lifespan:       "10-13 years",
		Speed:          "30-70 km/h",
		Weight:         "10-40 kg",
		CollectiveNoun: "A pack of dogs",
	},
	"bird": {
		Title:          "Bird",
		Fact:           "Some birds, like crows, are incredibly intelligent and can use tools.",
		Habitat:        "Worldwide",
		Emoji:          "🐦",
		Diet:           "Varied",
		Lifespan:       "2-100 years",
		Speed:          "Varied",
		Weight:         "Varied",
		CollectiveNoun: "A flock of birds",
	},
	"horse": {
		Title:          "Horse",
		Fact:           "Horses can sleep both lying down and standing up.",
		Habitat:        "Plains & Fields",
		Emoji:          "🐴",
		Diet:           "Herbivore",
		Lifespan:       "25-30 years",
		Speed:          "88 km/h",
		Weight:         "380-1,000 kg",
		CollectiveNoun: "A herd of horses",
	},
	"sheep": {
		Title:          "Sheep",
		Fact:           "Sheep have specialized rectangular pupils for panoramic vision.",
		Habitat:        "Grasslands",
		Emoji:          "🐑",
		Diet:           "Herbivore",
		Lifespan:       "10-12 years",
		Speed:          "40 km/h",
		Weight:         "45-160 kg",
		CollectiveNoun: "A flock of sheep",
	},
	"cow": {
		Title:          "Cow",
		Fact:           "Cows are social animals and make friends with each other.",
		Habitat:        "Farms & Grasslands",
		Emoji:          "🐮",
		Diet:           "Herbivore",
		Lifespan:       "15-20 years",
		Speed:          "40 km/h",
		Weight:         "720 kg",
		CollectiveNoun: "A herd of cows",
	},
	"bear": {
		Title:          "Bear",
		Fact:           "Bears have an excellent sense of smell, arguably better than dogs.",
		Habitat:        "Forests & Mountains",
		Emoji:          "🐻",
		Diet:           "Omnivore",
		Lifespan:       "20-30 years",
		Speed:          "55 km/h",
		Weight:         "100-600 kg",
		CollectiveNoun: "A sloth of bears",
	},
	"giraffe": {
		Title:          "Giraffe",
		Fact:           "A giraffe's neck is too short to reach the ground.",
		Habitat:        "African Savannas",
		Emoji:          "🦒",
		Diet:           "Herbivore",
		Lifespan:       "25 years",
		Speed:          "60 km/h",
		Weight:         "800-1,200 kg",
		CollectiveNoun: "A tower of giraffes",
	},
}

// Lookup returns the fact record for a label, matching case-insensitively.
// Unknown labels get a generic placeholder record so every detection carries
// usable details.
func Lookup(label string) models.AnimalFact {
	if fact, ok := animalFacts[strings.ToLower(label)]; ok {
		return fact
	}
	return models.AnimalFact{
		Title:   titleCaser.String(strings.ToLower(label)),
		Fact:    "An interesting creature detected by the drone!",
		Habitat: "Unknown",
		Emoji:   "🐾",
	}
}

// Known reports whether a label has a curated fact record.
func Known(label string) bool {
	_, ok := animalFacts[strings.ToLower(label)]
	return ok
}
