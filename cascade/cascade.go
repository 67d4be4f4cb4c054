// Package cascade performs the multi-step writes that keep an asset's detail
// list and its link rows consistent: reconciling an incoming detail list
// against the stored one, and deleting a parent together with its dependents.
// Link-level writes are load-bearing and abort the operation on failure;
// orphan cleanup afterwards is best-effort and only produces warnings.
package cascade

import (
	"fmt"
	"log"
	"strings"

	"mogul/models"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// DetailInput is one incoming row of an asset's detail list. LinkID refers to
// an existing asset_details row; zero means the row is new.
type DetailInput struct {
	LinkID uint   `json:"link_id,omitempty"`
	Label  string `json:"label"`
	Value  string `json:"value"`
}

// Result carries non-fatal problems encountered after the load-bearing writes
// succeeded. Callers surface Warnings alongside a successful response.
type Result struct {
	Warnings []string
}

// ReconcileAssetDetails diffs incoming against the asset's stored detail
// links: recognized link ids are updated in place, rows without one create a
// new Detail plus link, and stored links absent from incoming are removed
// together with the Detail rows they owned. Incoming rows missing a label or
// value are skipped without failing the batch.
func ReconcileAssetDetails(db *gorm.DB, assetID uint, incoming []DetailInput) (Result, error) {
	var res Result

	var existing []models.AssetDetail
	if err := db.Where("asset_id = ?", assetID).Find(&existing).Error; err != nil {
		return res, err
	}
	byLinkID := lo.KeyBy(existing, func(l models.AssetDetail) uint { return l.ID })

	valid := lo.Filter(incoming, func(d DetailInput, _ int) bool {
		return strings.TrimSpace(d.Label) != "" && strings.TrimSpace(d.Value) != ""
	})

	keep := make(map[uint]bool, len(valid))
	for _, d := range valid {
		if _, ok := byLinkID[d.LinkID]; ok {
			keep[d.LinkID] = true
		}
	}
	stale := lo.Filter(existing, func(l models.AssetDetail, _ int) bool { return !keep[l.ID] })
	orphanCandidates := lo.Map(stale, func(l models.AssetDetail, _ int) uint { return l.DetailID })

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, d := range valid {
			if link, ok := byLinkID[d.LinkID]; ok {
				updates := map[string]interface{}{"label": d.Label, "value": d.Value}
				if err := tx.Model(&models.Detail{}).Where("id = ?", link.DetailID).Updates(updates).Error; err != nil {
					return err
				}
				continue
			}
			detail := models.Detail{Label: d.Label, Value: d.Value}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
			link := models.AssetDetail{AssetID: assetID, DetailID: detail.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		if len(stale) > 0 {
			ids := lo.Map(stale, func(l models.AssetDetail, _ int) uint { return l.ID })
			if err := tx.Where("id IN ?", ids).Delete(&models.AssetDetail{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	res.Warnings = cleanupOrphanDetails(db, orphanCandidates)
	return res, nil
}

// DeleteAsset removes a catalog asset: its detail ids are captured first so
// the now-orphaned Detail rows can be cleaned up after the links and the
// asset itself are gone.
func DeleteAsset(db *gorm.DB, assetID uint) (Result, error) {
	var res Result

	var links []models.AssetDetail
	if err := db.Where("asset_id = ?", assetID).Find(&links).Error; err != nil {
		return res, err
	}
	detailIDs := lo.Map(links, func(l models.AssetDetail, _ int) uint { return l.DetailID })

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", assetID).Delete(&models.AssetDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Asset{}, assetID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	res.Warnings = cleanupOrphanDetails(db, detailIDs)
	return res, nil
}

// cleanupOrphanDetails deletes Detail rows that no asset link references
// anymore. A Detail still referenced elsewhere survives, and failures are
// logged and reported as warnings rather than failing the parent operation.
func cleanupOrphanDetails(db *gorm.DB, detailIDs []uint) []string {
	var warnings []string
	for _, id := range lo.Uniq(detailIDs) {
		var refs int64
		if err := db.Model(&models.AssetDetail{}).Where("detail_id = ?", id).Count(&refs).Error; err != nil {
			log.Printf("[cascade] orphan check failed for detail %d: %v", id, err)
			warnings = append(warnings, fmt.Sprintf("orphan check failed for detail %d", id))
			continue
		}
		if refs > 0 {
			continue
		}
		if err := db.Delete(&models.Detail{}, id).Error; err != nil {
			log.Printf("[cascade] failed to delete orphaned detail %d: %v", id, err)
			warnings = append(warnings, fmt.Sprintf("failed to delete orphaned detail %d", id))
		}
	}
	return warnings
}
