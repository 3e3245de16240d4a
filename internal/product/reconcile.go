package product

import "github.com/glowmart/admin-service/internal/model"

// VariantPlan is the set of row operations that turns the persisted variant
// collection into the submitted one. Sort order is always rewritten to the
// submitted position, new or existing.
type VariantPlan struct {
	Updates []model.ProductVariant
	Inserts []model.ProductVariant
	Deletes []string
}

// BuildVariantPlan diffs the submitted variant list against the rows
// currently persisted for the product. Submitted items with a persisted id
// become updates, id-less items become inserts, and persisted rows missing
// from the submission become deletes.
func BuildVariantPlan(persisted, submitted []model.ProductVariant) VariantPlan {
	existing := make(map[string]struct{}, len(persisted))
	for _, v := range persisted {
		existing[v.ID] = struct{}{}
	}

	var plan VariantPlan
	submittedIDs := make(map[string]struct{}, len(submitted))

	for i, v := range submitted {
		v.SortOrder = i
		if v.ID != "" {
			if _, ok := existing[v.ID]; ok {
				submittedIDs[v.ID] = struct{}{}
				plan.Updates = append(plan.Updates, v)
				continue
			}
			// Unknown id: treat as new, the client-generated key is not ours.
			v.ID = ""
		}
		plan.Inserts = append(plan.Inserts, v)
	}

	for _, v := range persisted {
		if _, ok := submittedIDs[v.ID]; !ok {
			plan.Deletes = append(plan.Deletes, v.ID)
		}
	}

	return plan
}
