package domain

import (
	"fmt"
	"strings"
)

// Category identifies a recipient category in the mail directory.
// It selects which mailbox population an export run enumerates.
type Category string

// Recipient categories supported by the exporter.
const (
	CategoryUser         Category = "user"
	CategoryShared       Category = "shared"
	CategoryRoom         Category = "room"
	CategoryEquipment    Category = "equipment"
	CategoryPublicFolder Category = "publicfolder"
	CategoryArbitration  Category = "arbitration"
	CategoryArchive      Category = "archive"
)

// AllCategories lists every recipient category in the fixed order used when
// an "all" export is requested. The order is part of the tool's contract:
// re-running an "all" export processes categories in the same sequence.
var AllCategories = []Category{
	CategoryUser,
	CategoryShared,
	CategoryRoom,
	CategoryEquipment,
	CategoryPublicFolder,
	CategoryArbitration,
	CategoryArchive,
}

// ParseCategory converts a user-supplied string to a Category.
// Matching is case-insensitive. Returns ErrUnknownCategory for anything else.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryUser:
		return CategoryUser, nil
	case CategoryShared:
		return CategoryShared, nil
	case CategoryRoom:
		return CategoryRoom, nil
	case CategoryEquipment:
		return CategoryEquipment, nil
	case CategoryPublicFolder:
		return CategoryPublicFolder, nil
	case CategoryArbitration:
		return CategoryArbitration, nil
	case CategoryArchive:
		return CategoryArchive, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// String returns the canonical lowercase name of the category.
func (c Category) String() string {
	return string(c)
}

// DisplayName returns the CamelCase name used in export file names,
// e.g. "PublicFolder" for CategoryPublicFolder.
func (c Category) DisplayName() string {
	switch c {
	case CategoryUser:
		return "User"
	case CategoryShared:
		return "Shared"
	case CategoryRoom:
		return "Room"
	case CategoryEquipment:
		return "Equipment"
	case CategoryPublicFolder:
		return "PublicFolder"
	case CategoryArbitration:
		return "Arbitration"
	case CategoryArchive:
		return "Archive"
	}
	return string(c)
}
