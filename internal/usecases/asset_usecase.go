package usecases

import (
	"context"

	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
)

// AssetUsecase handles citizen assets and their agricultural land detail
type AssetUsecase struct {
	uow         repositories.UnitOfWork
	assetRepo   repositories.AssetRepository
	profileRepo repositories.ProfileRepository
}

// NewAssetUsecase creates a new asset usecase
func NewAssetUsecase(uow repositories.UnitOfWork, assetRepo repositories.AssetRepository, profileRepo repositories.ProfileRepository) *AssetUsecase {
	return &AssetUsecase{uow: uow, assetRepo: assetRepo, profileRepo: profileRepo}
}

// ListMine returns the actor's own assets.
func (u *AssetUsecase) ListMine(ctx context.Context, actor access.Actor) ([]*entities.Asset, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.Asset, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.assetRepo.ListByCitizen(ctx, actor.ProfileID)
}

// ListForCitizen returns the assets of the citizen named username.
func (u *AssetUsecase) ListForCitizen(ctx context.Context, actor access.Actor, username string) ([]*entities.Asset, error) {
	citizen, err := resolveCitizen(ctx, u.profileRepo, username)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.Asset, citizen.ID)); err != nil {
		return nil, err
	}
	return u.assetRepo.ListByCitizen(ctx, citizen.ID)
}

// Create records an asset against an existing citizen.
func (u *AssetUsecase) Create(ctx context.Context, actor access.Actor, input *entities.CreateAssetInput) (*entities.Asset, error) {
	citizen, err := resolveCitizen(ctx, u.profileRepo, input.Username)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Create, access.OwnedByCitizen(access.Asset, citizen.ID)); err != nil {
		return nil, err
	}

	asset := &entities.Asset{CitizenID: citizen.ID, Valuation: input.Valuation}
	if err := applyAssetType(asset, input.Type, input.AgriculturalLand); err != nil {
		return nil, err
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.assetRepo.Create(txCtx, asset)
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// Update changes an asset's type and valuation. Moving away from
// agricultural_land drops the land detail.
func (u *AssetUsecase) Update(ctx context.Context, actor access.Actor, id uint, input *entities.UpdateAssetInput) (*entities.Asset, error) {
	asset, err := u.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "asset not found")
	}
	if err := access.Authorize(actor, access.Update, access.OwnedByCitizen(access.Asset, asset.CitizenID)); err != nil {
		return nil, err
	}

	asset.Valuation = input.Valuation
	if err := applyAssetType(asset, input.Type, input.AgriculturalLand); err != nil {
		return nil, err
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.assetRepo.Update(txCtx, asset)
	})
	if err != nil {
		return nil, notFoundAs(err, "asset not found")
	}
	return asset, nil
}

// Delete removes an asset and its land detail.
func (u *AssetUsecase) Delete(ctx context.Context, actor access.Actor, id uint) error {
	asset, err := u.assetRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, "asset not found")
	}
	if err := access.Authorize(actor, access.Delete, access.OwnedByCitizen(access.Asset, asset.CitizenID)); err != nil {
		return err
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.assetRepo.Delete(txCtx, id)
	})
	return notFoundAs(err, "asset not found")
}

// applyAssetType sets the type and reconciles the land detail with it. A nil
// land on an agricultural asset keeps whatever detail it already has.
func applyAssetType(asset *entities.Asset, assetType string, land *entities.AgriculturalLandInput) error {
	if !entities.IsAgriculturalLand(assetType) {
		if land != nil {
			return domainerrors.BadRequest("agricultural_land details only apply to agricultural_land assets")
		}
		asset.Type = assetType
		asset.AgriculturalLand = nil
		return nil
	}

	asset.Type = entities.AssetTypeAgriculturalLand
	if land == nil {
		return nil
	}
	detail := &entities.AgriculturalLand{
		AssetID:        asset.ID,
		Year:           land.Year,
		Season:         land.Season,
		CropType:       land.CropType,
		AreaCultivated: land.AreaCultivated,
		Yield:          land.Yield,
	}
	if asset.AgriculturalLand != nil {
		detail.ID = asset.AgriculturalLand.ID
	}
	asset.AgriculturalLand = detail
	return nil
}
