package entities

import "strings"

// AssetTypeAgriculturalLand is the asset type that carries an AgriculturalLand detail row.
const AssetTypeAgriculturalLand = "agricultural_land"

// IsAgriculturalLand reports whether an asset type names agricultural land.
// Matching ignores case and treats spaces and hyphens as underscores.
func IsAgriculturalLand(assetType string) bool {
	normalized := strings.ToLower(strings.TrimSpace(assetType))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	return normalized == AssetTypeAgriculturalLand
}

// Asset is a holding owned by one citizen.
type Asset struct {
	ID               uint              `json:"asset_id"`
	CitizenID        uint              `json:"citizen_id"`
	Type             string            `json:"type"`
	Valuation        string            `json:"valuation"`
	AgriculturalLand *AgriculturalLand `json:"agricultural_land,omitempty"`
}

// AgriculturalLand is the 1:1 detail of an agricultural_land asset.
type AgriculturalLand struct {
	ID             uint    `json:"land_id"`
	AssetID        uint    `json:"asset_id"`
	Year           int     `json:"year"`
	Season         string  `json:"season"`
	CropType       string  `json:"crop_type"`
	AreaCultivated float64 `json:"area_cultivated"`
	Yield          float64 `json:"yield"`
}

// AgriculturalLandInput is the optional land detail sent with an asset.
type AgriculturalLandInput struct {
	Year           int     `json:"Year" binding:"required,gt=0"`
	Season         string  `json:"Season" binding:"required,max=20"`
	CropType       string  `json:"Crop_type" binding:"required,max=30"`
	AreaCultivated float64 `json:"Area_cultivated" binding:"gte=0"`
	Yield          float64 `json:"Yield" binding:"gte=0"`
}

// CreateAssetInput represents input for recording an asset against a citizen.
type CreateAssetInput struct {
	Username         string                 `json:"User_name" binding:"required"`
	Type             string                 `json:"Type" binding:"required,max=50"`
	Valuation        string                 `json:"Valuation" binding:"required,max=50"`
	AgriculturalLand *AgriculturalLandInput `json:"agricultural_land"`
}

// UpdateAssetInput represents input for updating an asset. A nil
// AgriculturalLand on an agricultural asset keeps the current detail row.
type UpdateAssetInput struct {
	Type             string                 `json:"Type" binding:"required,max=50"`
	Valuation        string                 `json:"Valuation" binding:"required,max=50"`
	AgriculturalLand *AgriculturalLandInput `json:"agricultural_land"`
}
