package product

import (
	"testing"

	"github.com/glowmart/admin-service/internal/model"
)

func variant(id, name string) model.ProductVariant {
	return model.ProductVariant{
		BaseModel: model.BaseModel{ID: id},
		Name:      name,
	}
}

func TestBuildVariantPlanUpdateInsertDelete(t *testing.T) {
	persisted := []model.ProductVariant{
		variant("v1", "Small"),
		variant("v2", "Medium"),
	}
	submitted := []model.ProductVariant{
		variant("v1", "Small (edited)"),
		variant("", "Large"),
	}

	plan := BuildVariantPlan(persisted, submitted)

	if len(plan.Updates) != 1 || plan.Updates[0].ID != "v1" {
		t.Fatalf("updates = %+v, want exactly v1", plan.Updates)
	}
	if plan.Updates[0].Name != "Small (edited)" {
		t.Errorf("update carries stale fields: %+v", plan.Updates[0])
	}
	if len(plan.Inserts) != 1 || plan.Inserts[0].Name != "Large" {
		t.Fatalf("inserts = %+v, want exactly the new Large variant", plan.Inserts)
	}
	if len(plan.Deletes) != 1 || plan.Deletes[0] != "v2" {
		t.Fatalf("deletes = %v, want exactly [v2]", plan.Deletes)
	}
}

func TestBuildVariantPlanRewritesSortOrder(t *testing.T) {
	persisted := []model.ProductVariant{
		variant("v1", "A"),
		variant("v2", "B"),
	}
	// Submitted in reverse order with a new one in the middle.
	submitted := []model.ProductVariant{
		variant("v2", "B"),
		variant("", "C"),
		variant("v1", "A"),
	}

	plan := BuildVariantPlan(persisted, submitted)

	for _, u := range plan.Updates {
		switch u.ID {
		case "v2":
			if u.SortOrder != 0 {
				t.Errorf("v2 sort_order = %d, want 0", u.SortOrder)
			}
		case "v1":
			if u.SortOrder != 2 {
				t.Errorf("v1 sort_order = %d, want 2", u.SortOrder)
			}
		}
	}
	if len(plan.Inserts) != 1 || plan.Inserts[0].SortOrder != 1 {
		t.Fatalf("insert sort_order = %+v, want position 1", plan.Inserts)
	}
	if len(plan.Deletes) != 0 {
		t.Fatalf("deletes = %v, want none", plan.Deletes)
	}
}

func TestBuildVariantPlanUnknownIDBecomesInsert(t *testing.T) {
	persisted := []model.ProductVariant{variant("v1", "A")}
	// A temporary client key that never hit storage.
	submitted := []model.ProductVariant{
		variant("v1", "A"),
		variant("tmp-123", "B"),
	}

	plan := BuildVariantPlan(persisted, submitted)

	if len(plan.Inserts) != 1 || plan.Inserts[0].ID != "" {
		t.Fatalf("inserts = %+v, want one id-less insert", plan.Inserts)
	}
	if len(plan.Deletes) != 0 {
		t.Fatalf("deletes = %v, want none", plan.Deletes)
	}
}

func TestBuildVariantPlanEmptySubmissionDeletesAll(t *testing.T) {
	persisted := []model.ProductVariant{variant("v1", "A"), variant("v2", "B")}

	plan := BuildVariantPlan(persisted, nil)

	if len(plan.Updates) != 0 || len(plan.Inserts) != 0 {
		t.Fatalf("plan = %+v, want deletes only", plan)
	}
	if len(plan.Deletes) != 2 {
		t.Fatalf("deletes = %v, want both rows", plan.Deletes)
	}
}
