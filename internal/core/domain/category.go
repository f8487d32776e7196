package domain

import (
	"fmt"
	"strings"
)

// Category classifies an inventory item. The set is closed; tags are
// supplied by configuration or API input and parsed, never computed.
type Category string

const (
	// General merchandise
	CategoryConsumable     Category = "consumable"
	CategoryElectronics    Category = "electronics"
	CategoryClothing       Category = "clothing"
	CategoryFurniture      Category = "furniture"
	CategoryOfficeSupplies Category = "office-supplies"

	// Manufacturing & industrial
	CategoryMachinery       Category = "machinery"
	CategoryTools           Category = "tools"
	CategoryRawMaterials    Category = "raw-materials"
	CategorySafetyEquipment Category = "safety-equipment"

	// Food & beverage
	CategoryPerishables    Category = "perishables"
	CategoryNonPerishables Category = "non-perishables"
	CategoryBeverages      Category = "beverages"

	// Medical
	CategoryMedications      Category = "medications"
	CategoryMedicalEquipment Category = "medical-equipment"
	CategoryFirstAid         Category = "first-aid"

	// Technology
	CategoryComputers     Category = "computers"
	CategoryMobileDevices Category = "mobile-devices"
	CategoryNetworking    Category = "networking-equipment"

	// Books & stationery
	CategoryBooks      Category = "books"
	CategoryStationery Category = "stationery"

	// Miscellaneous
	CategoryCleaningSupplies Category = "cleaning-supplies"
	CategoryPetSupplies      Category = "pet-supplies"
	CategoryOther            Category = "other"
)

var categoryNames = map[Category]string{
	CategoryConsumable:       "Consumable",
	CategoryElectronics:      "Electronics",
	CategoryClothing:         "Clothing",
	CategoryFurniture:        "Furniture",
	CategoryOfficeSupplies:   "Office Supplies",
	CategoryMachinery:        "Machinery",
	CategoryTools:            "Tools & Equipment",
	CategoryRawMaterials:     "Raw Materials",
	CategorySafetyEquipment:  "Safety Equipment",
	CategoryPerishables:      "Perishable Food",
	CategoryNonPerishables:   "Non-Perishable Food",
	CategoryBeverages:        "Beverages",
	CategoryMedications:      "Medications & Drugs",
	CategoryMedicalEquipment: "Medical Equipment",
	CategoryFirstAid:         "First Aid Supplies",
	CategoryComputers:        "Computers & Laptops",
	CategoryMobileDevices:    "Mobile Phones & Tablets",
	CategoryNetworking:       "Networking Equipment",
	CategoryBooks:            "Books & Educational Materials",
	CategoryStationery:       "Stationery & School Supplies",
	CategoryCleaningSupplies: "Cleaning & Hygiene Products",
	CategoryPetSupplies:      "Pet Supplies",
	CategoryOther:            "Other",
}

// DisplayName returns the human-readable name of the category.
func (c Category) DisplayName() string {
	return categoryNames[c]
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory maps a tag string to its Category, case-insensitively.
// Unknown tags are an error, never a zero value.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
